package usecase

import (
	"context"
	"io"
	"testing"

	"go-clinic-management/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, sqlMock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func intPtr(v int) *int       { return &v }
func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return m.Called(ctx, db, patient).Error(0)
}

func (m *mockPatientRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error) {
	args := m.Called(ctx, db, id)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	args := m.Called(ctx, db)
	patients, _ := args.Get(0).([]entity.Patient)
	return patients, args.Error(1)
}

func (m *mockPatientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return m.Called(ctx, db, patient).Error(0)
}

func (m *mockPatientRepository) Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockDoctorRepository struct {
	mock.Mock
}

func (m *mockDoctorRepository) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return m.Called(ctx, db, doctor).Error(0)
}

func (m *mockDoctorRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Doctor, error) {
	args := m.Called(ctx, db, id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func (m *mockDoctorRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	args := m.Called(ctx, db)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Error(1)
}

func (m *mockDoctorRepository) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	return m.Called(ctx, db, doctor).Error(0)
}

func (m *mockDoctorRepository) Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return m.Called(ctx, db, appointment).Error(0)
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Appointment, error) {
	args := m.Called(ctx, db, id)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	args := m.Called(ctx, db, filter)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointmentRepository) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return m.Called(ctx, db, appointment).Error(0)
}

func (m *mockAppointmentRepository) Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepository) CountByPatientID(ctx context.Context, db *gorm.DB, patientID uint) (int64, error) {
	args := m.Called(ctx, db, patientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepository) CountByDoctorID(ctx context.Context, db *gorm.DB, doctorID uint) (int64, error) {
	args := m.Called(ctx, db, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepository) DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID uint) (int64, error) {
	args := m.Called(ctx, db, patientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepository) DeleteByDoctorID(ctx context.Context, db *gorm.DB, doctorID uint) (int64, error) {
	args := m.Called(ctx, db, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepository) ClearDoctor(ctx context.Context, db *gorm.DB, doctorID uint) (int64, error) {
	args := m.Called(ctx, db, doctorID)
	return args.Get(0).(int64), args.Error(1)
}
