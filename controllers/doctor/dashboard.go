package doctor

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"clinic-portal/gateway"
	"clinic-portal/middleware"
	"clinic-portal/models"
)

// Dashboard renders the doctor's view: their patients and the appointments
// booked against them.
type Dashboard struct {
	Booking *gateway.Booking
}

type overviewResponse struct {
	Role         models.Role       `json:"role"`
	User         *models.AuthUser  `json:"user"`
	Patients     []models.AuthUser `json:"patients"`
	Appointments []appointmentView `json:"appointments"`
	Error        string            `json:"error,omitempty"`
}

type appointmentView struct {
	models.Appointment
	Time string `json:"time"`
}

func (d *Dashboard) Overview(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	ctx := c.UserContext()

	view := overviewResponse{
		Role:         sess.Role,
		User:         sess.User,
		Patients:     []models.AuthUser{},
		Appointments: []appointmentView{},
	}

	patients, err := d.Booking.Patients(ctx, sess)
	if err != nil {
		log.Printf("load patients: %v", err)
		view.Error = "Failed to load patients"
	} else {
		view.Patients = patients
	}

	appointments, err := d.Booking.DoctorAppointments(ctx, sess)
	if err != nil {
		log.Printf("load doctor appointments: %v", err)
		if view.Error == "" {
			view.Error = "Failed to load appointments"
		}
	} else {
		for _, appt := range appointments {
			view.Appointments = append(view.Appointments, appointmentView{
				Appointment: appt,
				Time:        models.SlotTime(appt.Slot),
			})
		}
	}

	return c.JSON(view)
}
