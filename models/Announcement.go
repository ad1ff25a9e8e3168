package models

// Announcement types
const (
	AnnouncementInfo    = "info"
	AnnouncementWarning = "warning"
	AnnouncementSuccess = "success"
	AnnouncementError   = "error"
)

// Announcement is an admin-published notice. Reactions maps emoji to a
// counter that is only ever incremented, never decremented.
type Announcement struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Active    bool           `json:"active"`
	Priority  string         `json:"priority,omitempty"`
	VoiceData string         `json:"voiceData,omitempty"`
	Reactions map[string]int `json:"reactions,omitempty"`
	CreatedAt string         `json:"createdAt,omitempty"`
}

// ValidAnnouncementType reports whether t is a known announcement type
func ValidAnnouncementType(t string) bool {
	switch t {
	case AnnouncementInfo, AnnouncementWarning, AnnouncementSuccess, AnnouncementError:
		return true
	}
	return false
}
