package models

// Department is owned by the backend and mutated only through admin CRUD.
type Department struct {
	ID   string `json:"dept_id"`
	Name string `json:"name"`
}
