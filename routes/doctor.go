package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-portal/models"
)

// SetupDoctorRoutes configures the doctor-facing routes
func SetupDoctorRoutes(app *fiber.App, d Deps) {
	group := app.Group("/doctor", d.protected(models.RoleDoctor))
	group.Get("/dashboard", d.Doctor.Overview)
}
