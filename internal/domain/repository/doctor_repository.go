package repository

import (
	"context"

	"go-clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Doctor, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error)
	Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error)
}
