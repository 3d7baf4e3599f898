package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"clinic-portal/controllers"
	"clinic-portal/gateway"
	"clinic-portal/models"
	"clinic-portal/session"
)

const testSecret = "test_secret"
const testCookie = "portal_session"

func newAuthApp(t *testing.T, backend http.HandlerFunc, store session.Store) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	auth := &controllers.Auth{
		Gateway:    gateway.NewAuth(gateway.NewClient(srv.URL)),
		Sessions:   store,
		Secret:     testSecret,
		CookieName: testCookie,
	}
	app := fiber.New()
	app.Post("/signin", auth.SignIn)
	app.Post("/signup", auth.SignUp)
	return app
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookie(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie {
			return ck.Value
		}
	}
	t.Fatal("no session cookie set")
	return ""
}

func TestSignInCommitsSessionAndRedirects(t *testing.T) {
	store := session.NewMemory()
	app := newAuthApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"role":"ADMIN"}`))
	}, store)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/signin", `{"email":"a@b.com","password":"secret1"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/dashboard" {
		t.Errorf("redirected to %s, want /admin/dashboard", loc)
	}

	// The cookie carries the session id; the committed session must hold the
	// synthesized profile.
	token, _ := jwt.Parse(sessionCookie(t, resp), func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	claims := token.Claims.(jwt.MapClaims)
	sid, _ := claims["sid"].(string)

	sess, err := store.Get(context.Background(), sid)
	if err != nil || sess == nil {
		t.Fatalf("committed session not found: %v", err)
	}
	if sess.Role != models.RoleAdmin {
		t.Errorf("role = %s, want ADMIN", sess.Role)
	}
	if sess.User == nil || sess.User.Email != "a@b.com" {
		t.Errorf("user = %+v, want synthesized a@b.com", sess.User)
	}
}

func TestSignInValidationShortCircuits(t *testing.T) {
	store := session.NewMemory()
	app := newAuthApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called on validation failure")
	}, store)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/signin", `{"email":"","password":""}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSignInUnknownRole(t *testing.T) {
	app := newAuthApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"role":"SUPERUSER"}`))
	}, session.NewMemory())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/signin", `{"email":"a@b.com","password":"secret1"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookie && ck.Value != "" {
			t.Error("no session cookie may be issued for an unknown role")
		}
	}
}

func TestSignUpCommitsProfile(t *testing.T) {
	store := session.NewMemory()
	app := newAuthApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"role":"PATIENT"}`))
	}, store)

	body := `{"name":"Pat","email":"pat@clinic.com","password":"secret1","phone":"0123456789"}`
	resp, err := app.Test(jsonRequest(http.MethodPost, "/signup", body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if loc := resp.Header.Get("Location"); loc != "/patient/dashboard" {
		t.Errorf("redirected to %s, want /patient/dashboard", loc)
	}

	token, _ := jwt.Parse(sessionCookie(t, resp), func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	sid, _ := token.Claims.(jwt.MapClaims)["sid"].(string)
	sess, _ := store.Get(context.Background(), sid)
	if sess == nil || sess.User == nil {
		t.Fatal("expected committed session with user")
	}
	if sess.User.Name != "Pat" || sess.User.Phone != "0123456789" {
		t.Errorf("synthesized user = %+v", sess.User)
	}
}

func TestLogoutClearsSessionWhenBackendUnreachable(t *testing.T) {
	store := session.NewMemory()
	ctx := context.Background()
	sess := &models.Session{
		Role: models.RolePatient,
		User: &models.AuthUser{ID: "pat1", Email: "pat@clinic.com", Role: models.RolePatient},
	}
	if err := store.Set(ctx, "sid-1", sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	// A server that is already closed stands in for an unreachable backend.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := gateway.NewClient(srv.URL)
	srv.Close()

	auth := &controllers.Auth{
		Gateway:    gateway.NewAuth(client),
		Sessions:   store,
		Secret:     testSecret,
		CookieName: testCookie,
	}
	app := fiber.New()
	app.Post("/logout", func(c *fiber.Ctx) error {
		c.Locals("sid", "sid-1")
		c.Locals("session", sess)
		c.Locals("role", string(sess.Role))
		return c.Next()
	}, auth.Logout)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/logout", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/signin" {
		t.Errorf("redirected to %s, want /signin", loc)
	}

	if got, err := store.Get(ctx, "sid-1"); err != nil || got != nil {
		t.Errorf("session still present after logout: %+v (%v)", got, err)
	}

	var expired bool
	for _, ck := range resp.Cookies() {
		if ck.Name != testCookie {
			continue
		}
		expired = true
		if ck.Value != "" {
			t.Errorf("cookie value = %q, want empty", ck.Value)
		}
		if !ck.Expires.Before(time.Now()) {
			t.Errorf("cookie expires = %v, want in the past", ck.Expires)
		}
	}
	if !expired {
		t.Error("session cookie was not expired")
	}
}
