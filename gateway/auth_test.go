package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"clinic-portal/gateway"
	"clinic-portal/models"
)

func newAuthGateway(t *testing.T, handler http.HandlerFunc) (*gateway.Auth, *int64) {
	t.Helper()
	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return gateway.NewAuth(gateway.NewClient(srv.URL)), &requests
}

func TestLoginValidation(t *testing.T) {
	auth, requests := newAuthGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation failure must not reach the network")
	})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret1"},
		{"empty password", "a@b.com", ""},
		{"both empty", "", ""},
		{"malformed email", "not-an-email", "secret1"},
		{"email missing tld", "a@b", "secret1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := auth.Login(context.Background(), tt.email, tt.password)
			if sess != nil {
				t.Error("expected no session")
			}
			var ve *gateway.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
	if got := atomic.LoadInt64(requests); got != 0 {
		t.Errorf("expected 0 network calls, got %d", got)
	}
}

func TestSignupValidation(t *testing.T) {
	auth, requests := newAuthGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation failure must not reach the network")
	})

	tests := []struct {
		name  string
		input [4]string // name, email, password, phone
	}{
		{"empty name", [4]string{"", "a@b.com", "secret1", "0123456789"}},
		{"empty phone", [4]string{"Jo", "a@b.com", "secret1", ""}},
		{"bad email", [4]string{"Jo", "a@b", "secret1", "0123456789"}},
		{"phone too short", [4]string{"Jo", "a@b.com", "secret1", "123"}},
		{"phone too long", [4]string{"Jo", "a@b.com", "secret1", "0123456789012345"}},
		{"phone with letters", [4]string{"Jo", "a@b.com", "secret1", "01234abcde"}},
		{"short password", [4]string{"Jo", "a@b.com", "12345", "0123456789"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Signup(context.Background(), tt.input[0], tt.input[1], tt.input[2], tt.input[3])
			var ve *gateway.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
	if got := atomic.LoadInt64(requests); got != 0 {
		t.Errorf("expected 0 network calls, got %d", got)
	}
}

func TestSignupSeparatorsInPhoneAccepted(t *testing.T) {
	auth, _ := newAuthGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"role":"PATIENT"}`))
	})

	sess, err := auth.Signup(context.Background(), "Jo", "a@b.com", "secret1", "(012) 345-6789")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if sess.Role != models.RolePatient {
		t.Errorf("role = %s, want PATIENT", sess.Role)
	}
}

func TestLoginSynthesizesUser(t *testing.T) {
	auth, _ := newAuthGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/signin" {
			t.Errorf("path = %s, want /signin", r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc"})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"role":"ADMIN"}`))
	})

	sess, err := auth.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Role != models.RoleAdmin {
		t.Errorf("role = %s, want ADMIN", sess.Role)
	}
	if sess.User == nil || sess.User.Email != "a@b.com" || sess.User.Role != models.RoleAdmin {
		t.Errorf("synthesized user = %+v, want email a@b.com role ADMIN", sess.User)
	}
	if len(sess.BackendCookies) != 1 || sess.BackendCookies[0] != "token=abc" {
		t.Errorf("backend cookies = %v, want [token=abc]", sess.BackendCookies)
	}
}

func TestLoginMapsUserPayload(t *testing.T) {
	auth, _ := newAuthGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"role":"PATIENT","user":{"userId":"u1","name":"Pat","email":"pat@clinic.com","phone":"0123456789"}}`))
	})

	sess, err := auth.Login(context.Background(), "pat@clinic.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.User.ID != "u1" {
		t.Errorf("user id = %s, want u1", sess.User.ID)
	}
	if sess.User.Name != "Pat" {
		t.Errorf("user name = %s, want Pat", sess.User.Name)
	}
}

func TestLoginUnknownRole(t *testing.T) {
	auth, _ := newAuthGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"role":"SUPERUSER"}`))
	})

	sess, err := auth.Login(context.Background(), "a@b.com", "secret1")
	if !errors.Is(err, gateway.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if sess != nil {
		t.Error("no session must be returned for an unknown role")
	}
}

func TestLoginBackendMessageSurfaced(t *testing.T) {
	auth, _ := newAuthGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
	})

	_, err := auth.Login(context.Background(), "a@b.com", "wrongpw")
	if err == nil || err.Error() != "Invalid credentials" {
		t.Errorf("err = %v, want backend message", err)
	}
}

func TestLogout(t *testing.T) {
	var gotCookie string
	auth, _ := newAuthGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/logout" {
			t.Errorf("path = %s, want /logout", r.URL.Path)
		}
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{"success":true}`))
	})

	sess := &models.Session{Role: models.RolePatient, BackendCookies: []string{"token=abc"}}
	if err := auth.Logout(context.Background(), sess); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if gotCookie != "token=abc" {
		t.Errorf("forwarded cookie = %q, want token=abc", gotCookie)
	}
}
