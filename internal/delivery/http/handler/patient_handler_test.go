package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPatientHandler_CreatePatient(t *testing.T) {
	uc := new(mockPatientUsecase)
	h := NewPatientHandler(uc, validator.NewValidator())

	age := 30
	uc.On("CreatePatient", mock.Anything, &dto.CreatePatientRequest{Name: "Alice", Age: &age}).
		Return(&dto.PatientResponse{ID: 1, Name: "Alice", Age: &age}, nil)

	rec := httptest.NewRecorder()
	h.CreatePatient(rec, newRequest(http.MethodPost, "/patients", `{"name":"Alice","age":30}`, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, float64(1), resp.Data.(map[string]interface{})["id"])
	uc.AssertExpectations(t)
}

func TestPatientHandler_CreatePatient_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{"missing name", `{"age":30}`, "name", "name is required"},
		{"missing age", `{"name":"Alice"}`, "age", "age is required"},
		{"age not a number", `{"name":"Alice","age":"thirty"}`, "age", "age must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockPatientUsecase)
			h := NewPatientHandler(uc, validator.NewValidator())

			rec := httptest.NewRecorder()
			h.CreatePatient(rec, newRequest(http.MethodPost, "/patients", tt.body, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			fields := decodeResponse(t, rec).Error.(map[string]interface{})
			assert.Equal(t, tt.wantMsg, fields[tt.wantField])
			uc.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
		})
	}
}

func TestPatientHandler_CreatePatient_MalformedBody(t *testing.T) {
	h := NewPatientHandler(new(mockPatientUsecase), validator.NewValidator())

	rec := httptest.NewRecorder()
	h.CreatePatient(rec, newRequest(http.MethodPost, "/patients", `{"name":`, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeResponse(t, rec).Message)
}

func TestPatientHandler_GetPatient(t *testing.T) {
	uc := new(mockPatientUsecase)
	h := NewPatientHandler(uc, validator.NewValidator())

	uc.On("GetPatient", mock.Anything, uint(5)).Return(nil, usecase.ErrPatientNotFound)

	rec := httptest.NewRecorder()
	h.GetPatient(rec, newRequest(http.MethodGet, "/patients/5", "", map[string]string{"id": "5"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.GetPatient(rec, newRequest(http.MethodGet, "/patients/abc", "", map[string]string{"id": "abc"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatientHandler_UpdatePatient_Partial(t *testing.T) {
	uc := new(mockPatientUsecase)
	h := NewPatientHandler(uc, validator.NewValidator())

	age := 31
	uc.On("UpdatePatient", mock.Anything, uint(1), mock.MatchedBy(func(req *dto.UpdatePatientRequest) bool {
		return req.Name == nil && req.Contact == nil && req.Age != nil && *req.Age == 31
	})).Return(&dto.PatientResponse{ID: 1, Name: "Alice", Age: &age}, nil)

	rec := httptest.NewRecorder()
	h.UpdatePatient(rec, newRequest(http.MethodPatch, "/patients/1", `{"age":31}`, map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestPatientHandler_UpdatePatient_WrongType(t *testing.T) {
	uc := new(mockPatientUsecase)
	h := NewPatientHandler(uc, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.UpdatePatient(rec, newRequest(http.MethodPatch, "/patients/1", `{"name":42}`, map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fields := decodeResponse(t, rec).Error.(map[string]interface{})
	assert.Equal(t, "name must be a string", fields["name"])
}

func TestPatientHandler_DeletePatient(t *testing.T) {
	uc := new(mockPatientUsecase)
	h := NewPatientHandler(uc, validator.NewValidator())

	uc.On("DeletePatient", mock.Anything, uint(1)).Return(nil)
	uc.On("DeletePatient", mock.Anything, uint(2)).Return(usecase.ErrPatientNotFound)
	uc.On("DeletePatient", mock.Anything, uint(3)).Return(usecase.ErrPatientHasAppointments)

	tests := []struct {
		id     string
		status int
	}{
		{"1", http.StatusNoContent},
		{"2", http.StatusNotFound},
		{"3", http.StatusConflict},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.DeletePatient(rec, newRequest(http.MethodDelete, "/patients/"+tt.id, "", map[string]string{"id": tt.id}))
		assert.Equal(t, tt.status, rec.Code, tt.id)
	}
}
