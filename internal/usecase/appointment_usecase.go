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
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uint) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, error)
	AssignDoctor(ctx context.Context, appointmentID uint, req *dto.AssignDoctorRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, appointmentID uint, req *dto.UpdateStatusRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID uint) error
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
	transitionPolicy entity.TransitionPolicy
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	transitionPolicy entity.TransitionPolicy,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		transitionPolicy: transitionPolicy,
	}
}

// CreateAppointment books an appointment for an existing patient.
//
// Without an explicit status the appointment starts as scheduled, or as
// assigned when a doctor is supplied.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(ctx, u.db, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %d: %+v", *req.DoctorID, err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
	}

	status := entity.AppointmentStatus(req.Status)
	switch {
	case status != "" && !status.IsKnown():
		return nil, ErrInvalidStatus
	case status == entity.AppointmentStatusAssigned && req.DoctorID == nil:
		// assigned only holds while a doctor is attached
		return nil, ErrInvalidStatus
	case status == "" && req.DoctorID != nil:
		status = entity.AppointmentStatusAssigned
	case status == "":
		status = entity.AppointmentStatusScheduled
	}

	appointment := &entity.Appointment{
		Date:      req.Date,
		Time:      req.Time,
		Status:    status,
		Reason:    req.Reason,
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		// A parent deleted between the lookup and the insert
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, patient=%d, status=%s", appointment.ID, appointment.PatientID, appointment.Status)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, error) {
	filter := converter.AppointmentQueryToFilter(query)
	if filter != nil && filter.Status != "" && !filter.Status.IsKnown() {
		return nil, ErrInvalidStatus
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// AssignDoctor attaches an existing doctor and marks the appointment assigned.
// Repeating the call with the same doctor leaves the same result.
func (u *appointmentUsecase) AssignDoctor(ctx context.Context, appointmentID uint, req *dto.AssignDoctorRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment.AssignDoctor(doctor.ID)

	if err := u.appointmentRepo.Update(ctx, tx, appointment); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to assign doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor assigned: appointment=%d, doctor=%d", appointmentID, doctor.ID)
	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus moves the appointment to one of scheduled, confirmed,
// complete or cancelled, subject to the transition policy.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uint, req *dto.UpdateStatusRequest) (*dto.AppointmentResponse, error) {
	status := entity.AppointmentStatus(req.Status)
	if !status.IsSettable() {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	previous := appointment.Status
	if err := appointment.SetStatus(status, u.transitionPolicy); err != nil {
		if errors.Is(err, entity.ErrInvalidStatusTransition) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	if err := u.appointmentRepo.Update(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment status updated: id=%d, %s -> %s", appointmentID, previous, status)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uint) error {
	affectedRows, err := u.appointmentRepo.Delete(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed delete appointment: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
