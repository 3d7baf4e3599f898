package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"clinic-portal/models"
	"clinic-portal/utils"
)

// Auth wraps the backend's session lifecycle endpoints. It never touches the
// session store itself; callers commit the returned session.
type Auth struct {
	client *Client
}

func NewAuth(client *Client) *Auth {
	return &Auth{client: client}
}

type authResponse struct {
	Success bool      `json:"success"`
	Role    string    `json:"role"`
	Message string    `json:"message"`
	User    *wireUser `json:"user"`
}

// wireUser tolerates the identifier variants seen across backend versions.
type wireUser struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

func (w *wireUser) toModel(role models.Role) *models.AuthUser {
	id := w.UserID
	if id == "" {
		id = w.MongoID
	}
	if id == "" {
		id = w.ID
	}
	return &models.AuthUser{
		ID:    id,
		Name:  w.Name,
		Email: w.Email,
		Phone: w.Phone,
		Role:  role,
	}
}

// Login validates locally, then signs in against the backend. On success the
// returned session carries the backend's credential cookies; when the
// response omits a user payload a minimal profile is synthesized from the
// submitted email and returned role.
func (a *Auth) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Please enter both email and password"}
	}
	if !utils.ValidEmail(email) {
		return nil, &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}

	body := map[string]string{"email": email, "password": password}
	sess, user, err := a.authenticate(ctx, "/signin", body, "Login failed. Please check your credentials.")
	if err != nil {
		return nil, err
	}
	if user == nil {
		sess.User = &models.AuthUser{Email: email, Role: sess.Role}
	}
	return sess, nil
}

// Signup mirrors Login with the four-field registration form.
func (a *Auth) Signup(ctx context.Context, name, email, password, phone string) (*models.Session, error) {
	if name == "" || email == "" || password == "" || phone == "" {
		return nil, &ValidationError{Message: "Please fill in all fields"}
	}
	if !utils.ValidEmail(email) {
		return nil, &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}
	if !utils.ValidPhone(phone) {
		return nil, &ValidationError{Field: "phone", Message: "Please enter a valid phone number (10-15 digits)"}
	}
	if len(password) < 6 {
		return nil, &ValidationError{Field: "password", Message: "Password must be at least 6 characters long"}
	}

	body := map[string]string{"name": name, "email": email, "password": password, "phone": phone}
	sess, user, err := a.authenticate(ctx, "/signup", body, "Signup failed. Please try again.")
	if err != nil {
		return nil, err
	}
	if user == nil {
		sess.User = &models.AuthUser{Name: name, Email: email, Phone: phone, Role: sess.Role}
	}
	return sess, nil
}

func (a *Auth) authenticate(ctx context.Context, path string, body any, fallback string) (*models.Session, *models.AuthUser, error) {
	resp, err := a.client.do(ctx, http.MethodPost, path, body, nil)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	var ar authResponse
	if err := json.Unmarshal(raw, &ar); err != nil {
		return nil, nil, fmt.Errorf("decode auth response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest || !ar.Success {
		if ar.Message != "" {
			return nil, nil, errors.New(ar.Message)
		}
		return nil, nil, errors.New(fallback)
	}

	role := models.Role(ar.Role)
	if !role.Known() {
		return nil, nil, ErrUnknownRole
	}

	sess := &models.Session{
		Role:           role,
		BackendCookies: cookieStrings(resp.Cookies()),
	}
	if ar.User != nil {
		sess.User = ar.User.toModel(role)
		return sess, sess.User, nil
	}
	return sess, nil, nil
}

// Logout notifies the backend, best effort. Callers clear the local session
// and redirect regardless of the outcome.
func (a *Auth) Logout(ctx context.Context, sess *models.Session) error {
	resp, err := a.client.do(ctx, http.MethodPost, "/logout", map[string]string{}, sess)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("backend returned %s", resp.Status)
	}
	return nil
}
