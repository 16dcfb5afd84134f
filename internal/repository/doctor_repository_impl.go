package repository

import (
	"context"
	"errors"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(doctor).Error
}

func (r *doctorRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.WithContext(ctx).Order("id").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(doctor).Error
}

func (r *doctorRepository) Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
