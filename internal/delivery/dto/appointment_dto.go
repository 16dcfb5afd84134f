package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	Date      string `json:"date" validate:"required,max=50"`
	Time      string `json:"time" validate:"required,max=50"`
	PatientID uint   `json:"patient_id" validate:"required"`
	DoctorID  *uint  `json:"doctor_id" validate:"omitempty,gt=0"`
	Reason    string `json:"reason" validate:"omitempty"`
	Status    string `json:"status" validate:"omitempty,oneof=pending scheduled assigned confirmed complete cancelled"`
}

type AssignDoctorRequest struct {
	DoctorID uint `json:"doctor_id" validate:"required"`
}

// UpdateStatusRequest carries the new status. Membership in the settable
// vocabulary is checked by the usecase.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AppointmentQuery holds the optional list filters taken from the query string.
type AppointmentQuery struct {
	PatientID uint
	DoctorID  uint
	Status    string
}

// Response DTOs

type AppointmentResponse struct {
	ID        uint      `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	PatientID uint      `json:"patient_id"`
	DoctorID  *uint     `json:"doctor_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
