package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-portal/config"
	"clinic-portal/controllers"
	"clinic-portal/controllers/admin"
	"clinic-portal/controllers/doctor"
	"clinic-portal/controllers/patient"
	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/session"
)

// Deps bundles everything route registration needs.
type Deps struct {
	Auth     *controllers.Auth
	Patient  *patient.Dashboard
	Doctor   *doctor.Dashboard
	Admin    *admin.Dashboard
	Sessions session.Store
	Config   config.Config
}

func (d Deps) protected(role models.Role) fiber.Handler {
	return middleware.Protected(d.Sessions, d.Config.CookieSecret, d.Config.CookieName, role)
}
