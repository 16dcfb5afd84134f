package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Age     *int   `json:"age" validate:"required,gte=0"`
	Contact string `json:"contact" validate:"omitempty,max=255"`
}

// UpdatePatientRequest only changes the fields that are present.
type UpdatePatientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Age     *int    `json:"age" validate:"omitempty,gte=0"`
	Contact *string `json:"contact" validate:"omitempty,max=255"`
}

// Response DTOs

type PatientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Age       *int      `json:"age"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
