package models

// Admin is a portal administrator account. Credentials are matched by
// plain equality against this record; there is no hashing in the stored
// schema and callers must treat the password field accordingly.
type Admin struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Email       string   `json:"email,omitempty"`
	Name        string   `json:"name,omitempty"`
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}
