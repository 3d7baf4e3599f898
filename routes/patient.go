package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-portal/models"
)

// SetupPatientRoutes configures the patient booking routes
func SetupPatientRoutes(app *fiber.App, d Deps) {
	group := app.Group("/patient", d.protected(models.RolePatient))
	group.Get("/dashboard", d.Patient.Overview)
	group.Get("/doctors", d.Patient.SearchDoctors)
	group.Post("/book", d.Patient.Book)
	group.Post("/appointments/:id/cancel", d.Patient.Cancel)
}
