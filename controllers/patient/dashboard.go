package patient

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"clinic-portal/gateway"
	"clinic-portal/middleware"
	"clinic-portal/models"
	"clinic-portal/session"
	"clinic-portal/utils"
)

// Dashboard renders the patient booking flow: departments, doctor search,
// booking, and the patient's own appointments.
type Dashboard struct {
	Booking     *gateway.Booking
	Departments *gateway.Departments
	Sessions    session.Store
}

type appointmentView struct {
	models.Appointment
	Time string `json:"time"`
}

type overviewResponse struct {
	Role         models.Role         `json:"role"`
	User         *models.AuthUser    `json:"user"`
	Departments  []models.Department `json:"departments"`
	Appointments []appointmentView   `json:"appointments"`
	Slots        []models.SlotOption `json:"slots"`
	Error        string              `json:"error,omitempty"`
	Success      string              `json:"success,omitempty"`
}

// Overview assembles the dashboard view model.
func (d *Dashboard) Overview(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	sid := middleware.SIDFromCtx(c)
	ctx := c.UserContext()

	view := overviewResponse{
		Role:         sess.Role,
		User:         sess.User,
		Departments:  []models.Department{},
		Appointments: []appointmentView{},
		Slots:        models.Slots(),
	}

	departments, err := d.Departments.List(ctx, sess)
	if err != nil {
		log.Printf("load departments: %v", err)
		view.Error = "Failed to load departments"
	} else {
		view.Departments = departments
	}

	if pid := sess.PatientID(); pid != "" {
		appointments, err := d.Booking.Appointments(ctx, sess, pid)
		if err != nil {
			log.Printf("load appointments: %v", err)
		} else {
			for _, appt := range appointments {
				view.Appointments = append(view.Appointments, appointmentView{
					Appointment: appt,
					Time:        models.SlotTime(appt.Slot),
				})
			}
		}
	} else if view.Error == "" {
		view.Error = "Please login to continue"
	}

	if flash, err := d.Sessions.PopFlash(ctx, sid); err == nil && flash != nil {
		view.Success = flash.Success
		if view.Error == "" {
			view.Error = flash.Error
		}
	}

	return c.JSON(view)
}

// SearchDoctors lists doctors available for a department and date.
func (d *Dashboard) SearchDoctors(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	department := c.Query("department")
	date := c.Query("date")

	if department == "" || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please select department and date",
			Error:   "missing query parameters",
		})
	}

	doctors, err := d.Booking.AvailableDoctors(c.UserContext(), sess, department, date)
	if err != nil {
		log.Printf("search doctors: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
			Message: "Failed to load doctors",
			Error:   err.Error(),
		})
	}

	response := fiber.Map{"doctors": doctors}
	if len(doctors) == 0 {
		response["message"] = "No doctors available for selected department and date"
	}
	return c.JSON(response)
}

type bookInput struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	Slot     *int   `json:"slot"`
}

// Book submits a booking for the signed-in patient.
func (d *Dashboard) Book(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	sid := middleware.SIDFromCtx(c)

	input := new(bookInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.DoctorID == "" || input.Date == "" || input.Slot == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please select doctor, date and time slot",
			Error:   "missing booking fields",
		})
	}
	if *input.Slot < 0 || *input.Slot >= models.SlotCount {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid time slot",
			Error:   "slot index out of range",
		})
	}

	pid := sess.PatientID()
	if pid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Patient ID not found. Please login again.",
			Error:   "missing patient id",
		})
	}

	result, err := d.Booking.Book(c.UserContext(), sess, input.DoctorID, pid, input.Date, *input.Slot)
	if err != nil {
		log.Printf("book appointment: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
			Message: "Failed to book appointment",
			Error:   err.Error(),
		})
	}
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: result.FailureMessage("Failed to book appointment"),
			Error:   "booking rejected",
		})
	}

	if err := d.Sessions.SetFlash(c.UserContext(), sid, session.Flash{Success: "Appointment booked successfully!"}); err != nil {
		log.Printf("set flash: %v", err)
	}
	return c.Redirect("/patient/dashboard", fiber.StatusSeeOther)
}

// Cancel cancels one of the patient's appointments.
func (d *Dashboard) Cancel(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	sid := middleware.SIDFromCtx(c)
	id := c.Params("id")

	result, err := d.Booking.Cancel(c.UserContext(), sess, id)
	if err != nil {
		log.Printf("cancel appointment %s: %v", id, err)
		return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   err.Error(),
		})
	}
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: result.FailureMessage("Failed to cancel appointment"),
			Error:   "cancel rejected",
		})
	}

	if err := d.Sessions.SetFlash(c.UserContext(), sid, session.Flash{Success: "Appointment cancelled successfully"}); err != nil {
		log.Printf("set flash: %v", err)
	}
	return c.Redirect("/patient/dashboard", fiber.StatusSeeOther)
}
