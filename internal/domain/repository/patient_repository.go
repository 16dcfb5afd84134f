package repository

import (
	"context"

	"go-clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error)
}
