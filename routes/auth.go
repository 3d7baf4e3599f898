package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"clinic-portal/guard"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, d Deps) {
	// Credential endpoints sit behind a per-IP limiter.
	limit := limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(guard.SignInPath, fiber.StatusSeeOther)
	})

	app.Get("/signin", d.Auth.SignInView)
	app.Get("/signup", d.Auth.SignUpView)
	app.Post("/signin", limit, d.Auth.SignIn)
	app.Post("/signup", limit, d.Auth.SignUp)

	app.Post("/logout", d.protected(""), d.Auth.Logout)
	app.Get("/profile", d.protected(""), d.Auth.Profile)
}
