package repository

import (
	"context"
	"errors"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.WithContext(ctx)

	if filter != nil {
		if filter.PatientID != 0 {
			query = query.Where("patient_id = ?", filter.PatientID)
		}
		if filter.DoctorID != 0 {
			query = query.Where("doctor_id = ?", filter.DoctorID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	err := query.Order("id").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByPatientID(ctx context.Context, db *gorm.DB, patientID uint) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).Where("patient_id = ?", patientID).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByDoctorID(ctx context.Context, db *gorm.DB, doctorID uint) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Appointment{}).Where("doctor_id = ?", doctorID).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID uint) (int64, error) {
	result := db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeleteByDoctorID(ctx context.Context, db *gorm.DB, doctorID uint) (int64, error) {
	result := db.WithContext(ctx).Where("doctor_id = ?", doctorID).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

// ClearDoctor detaches the doctor from its appointments. Appointments that
// were only assigned fall back to scheduled.
func (r *appointmentRepository) ClearDoctor(ctx context.Context, db *gorm.DB, doctorID uint) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Updates(map[string]interface{}{
			"doctor_id": nil,
			"status": gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END",
				entity.AppointmentStatusAssigned, entity.AppointmentStatusScheduled),
		})
	return result.RowsAffected, result.Error
}
