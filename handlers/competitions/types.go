package competitions

// Constants for error messages
const (
	ErrInvalidRequest          = "Invalid request body"
	ErrCompetitionNotFound     = "Competition not found"
	ErrCompetitionsLoadFailed  = "Failed to load competitions"
	ErrCompetitionCreateFailed = "Failed to create competition"
	ErrCompetitionUpdateFailed = "Failed to update competition"
	ErrCompetitionDeleteFailed = "Failed to delete competition"
	ErrInvalidStatus           = "Invalid competition status"
	ErrInvalidTransition       = "Competition status cannot move backwards"
	ErrInvalidCategory         = "Invalid competition category"
	ErrParticipantNotFound     = "Participant not found"
	ErrStudentNotFound         = "Student not found"
	ErrAlreadyRegistered       = "Student already registered for this competition"
)

// CreateCompetitionRequest model for adding a competition
type CreateCompetitionRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Venue    string `json:"venue"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// UpdateCompetitionRequest is a partial patch of editable fields
type UpdateCompetitionRequest map[string]any

// StatusRequest model for status transitions
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AddParticipantRequest registers a student for a competition, by
// document id or registration code
type AddParticipantRequest struct {
	StudentID string `json:"studentId"`
	Code      string `json:"code"`
}

// PrizeRequest assigns a prize to a participant
type PrizeRequest struct {
	Prize string `json:"prize" binding:"required"`
}

// CustomPointsRequest assigns bonus points to a participant
type CustomPointsRequest struct {
	CustomPoints int `json:"customPoints"`
}
