package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-portal/models"
)

// SetupAdminRoutes configures the admin CRUD routes
func SetupAdminRoutes(app *fiber.App, d Deps) {
	group := app.Group("/admin", d.protected(models.RoleAdmin))
	group.Get("/dashboard", d.Admin.Overview)

	group.Post("/departments", d.Admin.CreateDepartment)
	group.Put("/departments/:id", d.Admin.UpdateDepartment)
	group.Delete("/departments/:id", d.Admin.DeleteDepartment)

	group.Post("/doctors", d.Admin.CreateDoctor)
	group.Put("/doctors/:id", d.Admin.UpdateDoctor)
	group.Delete("/doctors/:id", d.Admin.DeleteDoctor)
}
