package repository

import (
	"context"

	"go-clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error)

	// Dependent-row operations used by the patient and doctor delete policies.
	CountByPatientID(ctx context.Context, db *gorm.DB, patientID uint) (int64, error)
	CountByDoctorID(ctx context.Context, db *gorm.DB, doctorID uint) (int64, error)
	DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID uint) (int64, error)
	DeleteByDoctorID(ctx context.Context, db *gorm.DB, doctorID uint) (int64, error)
	ClearDoctor(ctx context.Context, db *gorm.DB, doctorID uint) (int64, error)
}
