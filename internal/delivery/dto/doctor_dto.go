package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Specialization string `json:"specialization" validate:"required,max=100"`
}

type UpdateDoctorRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=100"`
	Specialization *string `json:"specialization" validate:"omitempty,min=1,max=100"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
