package models

// Role determines which dashboard and routes a session may reach.
type Role string

const (
	RoleDoctor  Role = "DOCTOR"
	RolePatient Role = "PATIENT"
	RoleAdmin   Role = "ADMIN"
)

// Known reports whether the role is one of the three the portal understands.
func (r Role) Known() bool {
	switch r {
	case RoleDoctor, RolePatient, RoleAdmin:
		return true
	}
	return false
}

// AuthUser is the denormalized profile snapshot cached alongside the session.
// It exists for display only; the backend stays the source of truth.
type AuthUser struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  Role   `json:"role"`
}

// Session is the locally cached proof of authentication. Role is present
// exactly when the user is considered authenticated. BackendCookies carry the
// clinic API's credential cookies so follow-up calls stay credentialed.
type Session struct {
	Role           Role      `json:"role"`
	User           *AuthUser `json:"user,omitempty"`
	BackendCookies []string  `json:"backend_cookies,omitempty"`
}

// PatientID returns the identifier used for booking calls, or "" when the
// cached profile has none (e.g. a synthesized profile after a lean signin
// response).
func (s *Session) PatientID() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.ID
}
