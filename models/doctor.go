package models

type Doctor struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Specialization string `json:"specialization"`
	Department     string `json:"deptName"`
	Availability   string `json:"availability"`
	AvailableSlots []int  `json:"availableSlots,omitempty"`
}
