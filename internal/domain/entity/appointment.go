package entity

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStatusTransition = errors.New("invalid status transition")

// AppointmentStatus is the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusAssigned  AppointmentStatus = "assigned"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusComplete  AppointmentStatus = "complete"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AllAppointmentStatuses is every value the status column may hold.
var AllAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusScheduled,
	AppointmentStatusAssigned,
	AppointmentStatusConfirmed,
	AppointmentStatusComplete,
	AppointmentStatusCancelled,
}

// SettableAppointmentStatuses are the values accepted by a status update.
// pending and assigned are only ever set by creation and doctor assignment.
var SettableAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusComplete,
	AppointmentStatusCancelled,
}

// IsKnown reports whether s belongs to the status vocabulary.
func (s AppointmentStatus) IsKnown() bool {
	for _, known := range AllAppointmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsSettable reports whether s may be applied through a status update.
func (s AppointmentStatus) IsSettable() bool {
	for _, settable := range SettableAppointmentStatuses {
		if s == settable {
			return true
		}
	}
	return false
}

// Appointment books a patient, and optionally a doctor, into a date and time.
// Date and time are kept as free text.
type Appointment struct {
	ID        uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      string            `gorm:"type:varchar(50);not null" json:"date"`
	Time      string            `gorm:"type:varchar(50);not null" json:"time"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Reason    string            `gorm:"type:text" json:"reason,omitempty"`
	PatientID uint              `gorm:"not null;index" json:"patient_id"`
	DoctorID  *uint             `gorm:"index" json:"doctor_id"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// HasDoctor checks if a doctor has been attached
func (a *Appointment) HasDoctor() bool {
	return a.DoctorID != nil
}

// AssignDoctor attaches the doctor and moves the appointment to assigned.
// Re-assigning simply overwrites the previous doctor.
func (a *Appointment) AssignDoctor(doctorID uint) {
	id := doctorID
	a.DoctorID = &id
	a.Status = AppointmentStatusAssigned
}

// SetStatus applies status under the given transition policy.
func (a *Appointment) SetStatus(status AppointmentStatus, policy TransitionPolicy) error {
	if !policy.Allows(a.Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, a.Status, status)
	}
	a.Status = status
	return nil
}
