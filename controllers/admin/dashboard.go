package admin

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"clinic-portal/gateway"
	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/session"
	"clinic-portal/utils"
)

const defaultAvailability = "MON-FRI 10am-6pm"

// Dashboard renders the admin view and handles department and doctor CRUD.
type Dashboard struct {
	Departments *gateway.Departments
	Doctors     *gateway.Doctors
	Sessions    session.Store
}

type departmentView struct {
	models.Department
	Doctors []models.Doctor `json:"doctors"`
}

type overviewResponse struct {
	Role        models.Role      `json:"role"`
	User        *models.AuthUser `json:"user"`
	Departments []departmentView `json:"departments"`
	Doctors     []models.Doctor  `json:"doctors"`
	Error       string           `json:"error,omitempty"`
	Success     string           `json:"success,omitempty"`
}

// Overview lists departments with their doctors grouped under each.
func (d *Dashboard) Overview(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	sid := middleware.SIDFromCtx(c)
	ctx := c.UserContext()

	view := overviewResponse{
		Role:        sess.Role,
		User:        sess.User,
		Departments: []departmentView{},
		Doctors:     []models.Doctor{},
	}

	departments, err := d.Departments.List(ctx, sess)
	if err != nil {
		log.Printf("load departments: %v", err)
		view.Error = "Failed to load departments"
	}

	doctors, err := d.Doctors.List(ctx, sess)
	if err != nil {
		log.Printf("load doctors: %v", err)
		if view.Error == "" {
			view.Error = "Failed to load doctors"
		}
	} else {
		view.Doctors = doctors
	}

	for _, dept := range departments {
		entry := departmentView{Department: dept, Doctors: []models.Doctor{}}
		for _, doc := range doctors {
			if doc.Department == dept.Name {
				entry.Doctors = append(entry.Doctors, doc)
			}
		}
		view.Departments = append(view.Departments, entry)
	}

	if flash, err := d.Sessions.PopFlash(ctx, sid); err == nil && flash != nil {
		view.Success = flash.Success
		if view.Error == "" {
			view.Error = flash.Error
		}
	}

	return c.JSON(view)
}

type departmentInput struct {
	Name string `json:"name"`
}

// CreateDepartment adds a department.
func (d *Dashboard) CreateDepartment(c *fiber.Ctx) error {
	input := new(departmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if strings.TrimSpace(input.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Department name is required",
			Error:   "validation failed",
		})
	}

	sess := middleware.SessionFromCtx(c)
	result, err := d.Departments.Create(c.UserContext(), sess, input.Name)
	return d.finishMutation(c, result, err, "Department created successfully", "Failed to create department")
}

// UpdateDepartment renames a department.
func (d *Dashboard) UpdateDepartment(c *fiber.Ctx) error {
	input := new(departmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if strings.TrimSpace(input.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Department name is required",
			Error:   "validation failed",
		})
	}

	sess := middleware.SessionFromCtx(c)
	result, err := d.Departments.Update(c.UserContext(), sess, c.Params("id"), input.Name)
	return d.finishMutation(c, result, err, "Department updated successfully", "Failed to update department")
}

// DeleteDepartment removes a department.
func (d *Dashboard) DeleteDepartment(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	result, err := d.Departments.Delete(c.UserContext(), sess, c.Params("id"))
	return d.finishMutation(c, result, err, "Department deleted successfully", "Failed to delete department")
}

// CreateDoctor registers a doctor under a department.
func (d *Dashboard) CreateDoctor(c *fiber.Ctx) error {
	input := new(gateway.CreateDoctorInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if msg := validateDoctor(input); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: msg,
			Error:   "validation failed",
		})
	}
	if input.Availability == "" {
		input.Availability = defaultAvailability
	}

	sess := middleware.SessionFromCtx(c)
	result, err := d.Doctors.Create(c.UserContext(), sess, *input)
	return d.finishMutation(c, result, err, "Doctor created successfully", "Failed to create doctor")
}

// UpdateDoctor edits a doctor; the password is only forwarded when set.
func (d *Dashboard) UpdateDoctor(c *fiber.Ctx) error {
	input := new(gateway.UpdateDoctorInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	sess := middleware.SessionFromCtx(c)
	result, err := d.Doctors.Update(c.UserContext(), sess, c.Params("id"), *input)
	return d.finishMutation(c, result, err, "Doctor updated successfully", "Failed to update doctor")
}

// DeleteDoctor removes a doctor.
func (d *Dashboard) DeleteDoctor(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	result, err := d.Doctors.Delete(c.UserContext(), sess, c.Params("id"))
	return d.finishMutation(c, result, err, "Doctor deleted successfully", "Failed to delete doctor")
}

func validateDoctor(input *gateway.CreateDoctorInput) string {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return "Doctor name is required"
	case strings.TrimSpace(input.Email) == "":
		return "Email is required"
	case strings.TrimSpace(input.Password) == "":
		return "Password is required for new doctor"
	case strings.TrimSpace(input.Phone) == "":
		return "Phone is required"
	case strings.TrimSpace(input.Specialization) == "":
		return "Specialization is required"
	case input.DeptName == "":
		return "Department is required"
	}
	return ""
}

// finishMutation turns a gateway result into either an error response or a
// flash-and-redirect back to the dashboard.
func (d *Dashboard) finishMutation(c *fiber.Ctx, result *gateway.Result, err error, okDefault, failDefault string) error {
	if err != nil {
		log.Printf("admin mutation failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
			Message: failDefault,
			Error:   err.Error(),
		})
	}
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: result.FailureMessage(failDefault),
			Error:   "backend rejected request",
		})
	}

	message := result.Message
	if message == "" {
		message = okDefault
	}
	sid := middleware.SIDFromCtx(c)
	if err := d.Sessions.SetFlash(c.UserContext(), sid, session.Flash{Success: message}); err != nil {
		log.Printf("set flash: %v", err)
	}
	return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
}
