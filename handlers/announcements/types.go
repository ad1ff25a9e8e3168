package announcements

// Constants for error messages
const (
	ErrInvalidRequest           = "Invalid request body"
	ErrAnnouncementNotFound     = "Announcement not found"
	ErrAnnouncementsLoadFailed  = "Failed to load announcements"
	ErrAnnouncementCreateFailed = "Failed to create announcement"
	ErrAnnouncementUpdateFailed = "Failed to update announcement"
	ErrAnnouncementDeleteFailed = "Failed to delete announcement"
	ErrInvalidType              = "Invalid announcement type"
	ErrInvalidEmoji             = "Invalid reaction emoji"
)

// CreateAnnouncementRequest model for publishing an announcement
type CreateAnnouncementRequest struct {
	Title     string `json:"title" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	VoiceData string `json:"voiceData"`
}

// UpdateAnnouncementRequest is a partial patch of editable fields
type UpdateAnnouncementRequest map[string]any

// ReactionRequest records one emoji reaction
type ReactionRequest struct {
	Emoji string `json:"emoji" binding:"required"`
}
