package gateway

import (
	"context"
	"net/http"
	"net/url"

	"clinic-portal/models"
)

// Booking wraps the patient booking flow and the doctor-facing appointment
// reads. The /patient/* routes are the pinned contract; the legacy
// /appointments/* variants are not issued, though the mapper still accepts
// the legacy "id" field on reads.
type Booking struct {
	client *Client
}

func NewBooking(client *Client) *Booking {
	return &Booking{client: client}
}

type wireAppointment struct {
	MongoID   string `json:"_id"`
	ID        string `json:"id"`
	DoctorID  string `json:"doctorId"`
	PatientID string `json:"patientId"`
	Date      string `json:"date"`
	Slot      int    `json:"slot"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func (w wireAppointment) toModel() models.Appointment {
	id := w.MongoID
	if id == "" {
		id = w.ID
	}
	return models.Appointment{
		ID:        id,
		DoctorID:  w.DoctorID,
		PatientID: w.PatientID,
		Date:      w.Date,
		Slot:      w.Slot,
		Status:    models.AppointmentStatus(w.Status),
		CreatedAt: w.CreatedAt,
	}
}

// AvailableDoctors searches doctors bookable for a specialization and date.
func (b *Booking) AvailableDoctors(ctx context.Context, sess *models.Session, specialization, date string) ([]models.Doctor, error) {
	query := url.Values{}
	if specialization != "" {
		query.Set("specialization", specialization)
	}
	if date != "" {
		query.Set("date", date)
	}
	path := "/patient/available"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	items, err := b.client.getList(ctx, path, sess, "doctors")
	if err != nil {
		return nil, err
	}
	return decodeItems(items, wireDoctor.toModel), nil
}

type bookRequest struct {
	DoctorID  string `json:"doctor_id"`
	PatientID string `json:"patient_id"`
	Date      string `json:"date"`
	Slot      int    `json:"slot"`
}

func (b *Booking) Book(ctx context.Context, sess *models.Session, doctorID, patientID, date string, slot int) (*Result, error) {
	body := bookRequest{DoctorID: doctorID, PatientID: patientID, Date: date, Slot: slot}
	return b.client.doResult(ctx, http.MethodPost, "/patient/book", body, sess)
}

func (b *Booking) Appointments(ctx context.Context, sess *models.Session, patientID string) ([]models.Appointment, error) {
	items, err := b.client.getList(ctx, "/patient/appointments/"+patientID, sess, "appointments")
	if err != nil {
		return nil, err
	}
	return decodeItems(items, wireAppointment.toModel), nil
}

func (b *Booking) Cancel(ctx context.Context, sess *models.Session, appointmentID string) (*Result, error) {
	return b.client.doResult(ctx, http.MethodPatch, "/patient/appointments/"+appointmentID+"/cancel", map[string]string{}, sess)
}

// Patients lists the doctor's patients.
func (b *Booking) Patients(ctx context.Context, sess *models.Session) ([]models.AuthUser, error) {
	items, err := b.client.getList(ctx, "/patient", sess, "patients")
	if err != nil {
		return nil, err
	}
	return decodeItems(items, func(w wireUser) models.AuthUser {
		return *(&w).toModel(models.RolePatient)
	}), nil
}

// DoctorAppointments lists the appointments booked against the signed-in
// doctor.
func (b *Booking) DoctorAppointments(ctx context.Context, sess *models.Session) ([]models.Appointment, error) {
	items, err := b.client.getList(ctx, "/doctors/appointment", sess, "appointments")
	if err != nil {
		return nil, err
	}
	return decodeItems(items, wireAppointment.toModel), nil
}
