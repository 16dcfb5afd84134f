package repository

import (
	"context"
	"errors"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Order("id").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
