package gateway

import (
	"context"
	"net/http"

	"clinic-portal/models"
)

// Departments wraps department listing and the admin CRUD endpoints.
type Departments struct {
	client *Client
}

func NewDepartments(client *Client) *Departments {
	return &Departments{client: client}
}

type wireDepartment struct {
	DeptID  string `json:"dept_id"`
	MongoID string `json:"_id"`
	Name    string `json:"name"`
}

func (w wireDepartment) toModel() models.Department {
	id := w.DeptID
	if id == "" {
		id = w.MongoID
	}
	return models.Department{ID: id, Name: w.Name}
}

func (g *Departments) List(ctx context.Context, sess *models.Session) ([]models.Department, error) {
	items, err := g.client.getList(ctx, "/patient/departments", sess, "departments")
	if err != nil {
		return nil, err
	}
	return decodeItems(items, wireDepartment.toModel), nil
}

func (g *Departments) Create(ctx context.Context, sess *models.Session, name string) (*Result, error) {
	return g.client.doResult(ctx, http.MethodPost, "/admin/departments", map[string]string{"name": name}, sess)
}

func (g *Departments) Update(ctx context.Context, sess *models.Session, id, name string) (*Result, error) {
	return g.client.doResult(ctx, http.MethodPut, "/admin/departments/"+id, map[string]string{"name": name}, sess)
}

func (g *Departments) Delete(ctx context.Context, sess *models.Session, id string) (*Result, error) {
	return g.client.doResult(ctx, http.MethodDelete, "/admin/departments/"+id, nil, sess)
}
