package students

// Constants for error messages
const (
	ErrInvalidRequest      = "Invalid request body"
	ErrStudentNotFound     = "Student not found"
	ErrStudentsLoadFailed  = "Failed to load students"
	ErrStudentCreateFailed = "Failed to create student"
	ErrStudentUpdateFailed = "Failed to update student"
	ErrStudentDeleteFailed = "Failed to delete student"
	ErrExportFailed        = "Failed to export students"
	ErrResetFailed         = "Failed to reset student data"
)

// CreateStudentRequest model for adding a student. The registration code
// is generated server side when absent.
type CreateStudentRequest struct {
	Name  string `json:"name" binding:"required"`
	Team  string `json:"team"`
	Year string `json:"year"`
	Code  string `json:"code"`
}

// UpdateStudentRequest is a partial patch of editable fields
type UpdateStudentRequest map[string]any
