package gateway

import (
	"context"
	"net/http"

	"clinic-portal/models"
)

// Doctors wraps the doctor listing and admin CRUD endpoints.
type Doctors struct {
	client *Client
}

func NewDoctors(client *Client) *Doctors {
	return &Doctors{client: client}
}

type wireDoctor struct {
	DoctorID       string `json:"doctor_id"`
	MongoID        string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
	Department     string `json:"department"`
	DeptName       string `json:"deptName"`
	Availability   string `json:"availability"`
	AvailableSlots []int  `json:"availableSlots"`
}

func (w wireDoctor) toModel() models.Doctor {
	id := w.DoctorID
	if id == "" {
		id = w.MongoID
	}
	dept := w.Department
	if dept == "" {
		dept = w.DeptName
	}
	return models.Doctor{
		ID:             id,
		Name:           w.Name,
		Email:          w.Email,
		Phone:          w.Phone,
		Specialization: w.Specialization,
		Department:     dept,
		Availability:   w.Availability,
		AvailableSlots: w.AvailableSlots,
	}
}

// CreateDoctorInput carries the admin create form. All fields are required.
type CreateDoctorInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
	DeptName       string `json:"deptName"`
	Availability   string `json:"availability"`
}

// UpdateDoctorInput carries the admin edit form; the password is only sent
// when the admin typed a new one.
type UpdateDoctorInput struct {
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Password       string `json:"password,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	DeptName       string `json:"deptName,omitempty"`
	Availability   string `json:"availability,omitempty"`
}

func (g *Doctors) List(ctx context.Context, sess *models.Session) ([]models.Doctor, error) {
	items, err := g.client.getList(ctx, "/doctors/available", sess, "doctors")
	if err != nil {
		return nil, err
	}
	return decodeItems(items, wireDoctor.toModel), nil
}

func (g *Doctors) Create(ctx context.Context, sess *models.Session, input CreateDoctorInput) (*Result, error) {
	return g.client.doResult(ctx, http.MethodPost, "/admin/doctors", input, sess)
}

func (g *Doctors) Update(ctx context.Context, sess *models.Session, id string, input UpdateDoctorInput) (*Result, error) {
	return g.client.doResult(ctx, http.MethodPut, "/admin/doctors/"+id, input, sess)
}

func (g *Doctors) Delete(ctx context.Context, sess *models.Session, id string) (*Result, error) {
	return g.client.doResult(ctx, http.MethodDelete, "/admin/doctors/"+id, nil, sess)
}
