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
	ErrPatientNotFound        = errors.New("patient not found")
	ErrPatientHasAppointments = errors.New("patient still has appointments")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, patientID uint) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, patientID uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, patientID uint) error
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	deletePolicy    entity.DeletePolicy
}

// NewPatientUsecase builds the patient usecase. deletePolicy must be cascade
// or restrict; appointments cannot exist without a patient.
func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	deletePolicy entity.DeletePolicy,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		deletePolicy:    deletePolicy,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		Name:    req.Name,
		Age:     req.Age,
		Contact: req.Contact,
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, patientID uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Only supplied fields change
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = req.Age
	}
	if req.Contact != nil {
		patient.Contact = *req.Contact
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, patientID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	var removed int64
	switch u.deletePolicy {
	case entity.DeletePolicyRestrict:
		count, err := u.appointmentRepo.CountByPatientID(ctx, tx, patientID)
		if err != nil {
			u.log.Warnf("Failed to count patient appointments: %+v", err)
			return err
		}
		if count > 0 {
			return ErrPatientHasAppointments
		}
	default:
		removed, err = u.appointmentRepo.DeleteByPatientID(ctx, tx, patientID)
		if err != nil {
			u.log.Warnf("Failed to delete patient appointments: %+v", err)
			return err
		}
	}

	affectedRows, err := u.patientRepo.Delete(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed delete patient: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrPatientNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Patient deleted: id=%d, appointments_removed=%d", patientID, removed)
	return nil
}
