package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clinic-portal/gateway"
	"clinic-portal/guard"
	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/session"
	"clinic-portal/utils"
)

// Auth handles the session lifecycle: signin, signup, logout, profile.
type Auth struct {
	Gateway    *gateway.Auth
	Sessions   session.Store
	Secret     string
	CookieName string
}

type signInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// SignInView is the unauthenticated landing view.
func (a *Auth) SignInView(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"view": "signin"})
}

// SignUpView is the registration view.
func (a *Auth) SignUpView(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"view": "signup"})
}

// SignIn validates the form through the auth gateway, commits the session
// and redirects to the role's dashboard.
func (a *Auth) SignIn(c *fiber.Ctx) error {
	input := new(signInInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	sess, err := a.Gateway.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return a.authFailure(c, err, "Login failed. Please check your credentials.")
	}
	return a.commit(c, sess)
}

// SignUp registers a new account and signs the user in.
func (a *Auth) SignUp(c *fiber.Ctx) error {
	input := new(signUpInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	sess, err := a.Gateway.Signup(c.UserContext(), input.Name, input.Email, input.Password, input.Phone)
	if err != nil {
		return a.authFailure(c, err, "Signup failed. Please try again.")
	}
	return a.commit(c, sess)
}

func (a *Auth) authFailure(c *fiber.Ctx, err error, fallback string) error {
	var ve *gateway.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: ve.Message,
			Error:   "validation failed",
		})
	case errors.Is(err, gateway.ErrUnknownRole):
		return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
			Message: "Invalid role received from server",
			Error:   err.Error(),
		})
	default:
		log.Printf("auth call failed: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: err.Error(),
			Error:   fallback,
		})
	}
}

func (a *Auth) commit(c *fiber.Ctx, sess *models.Session) error {
	sid := uuid.New().String()
	if err := a.Sessions.Set(c.UserContext(), sid, sess); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save session",
			Error:   err.Error(),
		})
	}

	token, err := middleware.SessionToken(sid, sess.Role, a.Secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to sign session cookie",
			Error:   err.Error(),
		})
	}

	// No Expires: the session lives until logout.
	c.Cookie(&fiber.Cookie{
		Name:     a.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect(guard.DashboardPath(sess.Role), fiber.StatusSeeOther)
}

// Logout clears the local session first, then notifies the backend best
// effort. The user lands on signin either way.
func (a *Auth) Logout(c *fiber.Ctx) error {
	sid := middleware.SIDFromCtx(c)
	sess := middleware.SessionFromCtx(c)

	if err := a.Sessions.Clear(c.UserContext(), sid); err != nil {
		log.Printf("session clear failed for %s: %v", sid, err)
	}
	if err := a.Gateway.Logout(c.UserContext(), sess); err != nil {
		log.Printf("backend logout failed: %v", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     a.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect(guard.SignInPath, fiber.StatusSeeOther)
}

// Profile returns the cached profile snapshot for display.
func (a *Auth) Profile(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	return c.JSON(fiber.Map{
		"role": sess.Role,
		"user": sess.User,
	})
}
