package usecase

import (
	"context"
	"errors"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrDoctorHasAppointments = errors.New("doctor still has appointments")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uint) error
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	deletePolicy    entity.DeletePolicy
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	deletePolicy entity.DeletePolicy,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		deletePolicy:    deletePolicy,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
	}

	if err := u.doctorRepo.Create(ctx, u.db, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}

	if err := u.doctorRepo.Update(ctx, tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor removes the doctor and applies the delete policy to the
// appointments it was assigned to.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	var touched int64
	switch u.deletePolicy {
	case entity.DeletePolicyRestrict:
		count, err := u.appointmentRepo.CountByDoctorID(ctx, tx, doctorID)
		if err != nil {
			u.log.Warnf("Failed to count doctor appointments: %+v", err)
			return err
		}
		if count > 0 {
			return ErrDoctorHasAppointments
		}
	case entity.DeletePolicyCascade:
		touched, err = u.appointmentRepo.DeleteByDoctorID(ctx, tx, doctorID)
		if err != nil {
			u.log.Warnf("Failed to delete doctor appointments: %+v", err)
			return err
		}
	default:
		touched, err = u.appointmentRepo.ClearDoctor(ctx, tx, doctorID)
		if err != nil {
			u.log.Warnf("Failed to detach doctor from appointments: %+v", err)
			return err
		}
	}

	affectedRows, err := u.doctorRepo.Delete(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Doctor deleted: id=%d, policy=%s, appointments_affected=%d", doctorID, u.deletePolicy, touched)
	return nil
}
