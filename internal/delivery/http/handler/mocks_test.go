package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/pkg/response"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRequest(method, target, body string, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

type mockPatientUsecase struct {
	mock.Mock
}

func (m *mockPatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.PatientResponse)
	return resp, args.Error(1)
}

func (m *mockPatientUsecase) GetPatient(ctx context.Context, patientID uint) (*dto.PatientResponse, error) {
	args := m.Called(ctx, patientID)
	resp, _ := args.Get(0).(*dto.PatientResponse)
	return resp, args.Error(1)
}

func (m *mockPatientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*dto.PatientListResponse)
	return resp, args.Error(1)
}

func (m *mockPatientUsecase) UpdatePatient(ctx context.Context, patientID uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, patientID, req)
	resp, _ := args.Get(0).(*dto.PatientResponse)
	return resp, args.Error(1)
}

func (m *mockPatientUsecase) DeletePatient(ctx context.Context, patientID uint) error {
	return m.Called(ctx, patientID).Error(0)
}

type mockDoctorUsecase struct {
	mock.Mock
}

func (m *mockDoctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.DoctorResponse)
	return resp, args.Error(1)
}

func (m *mockDoctorUsecase) GetDoctor(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, doctorID)
	resp, _ := args.Get(0).(*dto.DoctorResponse)
	return resp, args.Error(1)
}

func (m *mockDoctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*dto.DoctorListResponse)
	return resp, args.Error(1)
}

func (m *mockDoctorUsecase) UpdateDoctor(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, doctorID, req)
	resp, _ := args.Get(0).(*dto.DoctorResponse)
	return resp, args.Error(1)
}

func (m *mockDoctorUsecase) DeleteDoctor(ctx context.Context, doctorID uint) error {
	return m.Called(ctx, doctorID).Error(0)
}

type mockAppointmentUsecase struct {
	mock.Mock
}

func (m *mockAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) GetAppointment(ctx context.Context, appointmentID uint) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, appointmentID)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) GetAllAppointments(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(*dto.AppointmentListResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) AssignDoctor(ctx context.Context, appointmentID uint, req *dto.AssignDoctorRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, appointmentID, req)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uint, req *dto.UpdateStatusRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, appointmentID, req)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uint) error {
	return m.Called(ctx, appointmentID).Error(0)
}

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Login(ctx context.Context, role string, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, role, req)
	resp, _ := args.Get(0).(*dto.LoginResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, accountID uint, tokenID string) error {
	return m.Called(ctx, accountID, tokenID).Error(0)
}
