// Package guard decides whether a session may activate a role-gated view.
// It is a pure function of (session, required role); navigation itself is
// performed by the middleware that consumes the decision.
package guard

import "clinic-portal/models"

const SignInPath = "/signin"

// Decision is the outcome of a guard check: either the view may activate, or
// the caller must redirect to RedirectTo.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide evaluates the guard for a target view requiring the given role.
// A zero required role means the view only needs an authenticated session.
func Decide(sess *models.Session, required models.Role) Decision {
	if sess == nil {
		return Decision{RedirectTo: SignInPath}
	}
	if required == "" {
		return Decision{Allow: true}
	}
	if sess.Role == required {
		return Decision{Allow: true}
	}
	// Wrong role: send the user to their own dashboard, never the target.
	return Decision{RedirectTo: DashboardPath(sess.Role)}
}

// DashboardPath maps a role to its dashboard, falling back to signin for
// roles the portal does not recognize.
func DashboardPath(role models.Role) string {
	switch role {
	case models.RoleDoctor:
		return "/doctor/dashboard"
	case models.RolePatient:
		return "/patient/dashboard"
	case models.RoleAdmin:
		return "/admin/dashboard"
	default:
		return SignInPath
	}
}
