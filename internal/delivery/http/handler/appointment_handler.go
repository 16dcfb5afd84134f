package handler

import (
	"net/http"
	"strconv"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid status", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// GetAllAppointments lists appointments, optionally filtered by the
// patient_id, doctor_id and status query parameters.
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	query := &dto.AppointmentQuery{Status: r.URL.Query().Get("status")}
	fieldErrors := make(map[string]string)

	if v := r.URL.Query().Get("patient_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			fieldErrors["patient_id"] = "patient_id must be a number"
		}
		query.PatientID = uint(id)
	}
	if v := r.URL.Query().Get("doctor_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			fieldErrors["doctor_id"] = "doctor_id must be a number"
		}
		query.DoctorID = uint(id)
	}
	if len(fieldErrors) > 0 {
		response.ValidationError(w, fieldErrors)
		return
	}

	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context(), query)
	if err != nil {
		if err == usecase.ErrInvalidStatus {
			response.ValidationError(w, map[string]string{"status": "status is invalid"})
			return
		}
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) AssignDoctor(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.AssignDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.AssignDoctor(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to assign doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor assigned successfully", appointment)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.ValidationError(w, map[string]string{
				"status": "status must be one of: scheduled confirmed complete cancelled",
			})
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidTransition:
			response.Conflict(w, "Status transition not allowed")
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	err = h.appointmentUsecase.DeleteAppointment(r.Context(), appointmentID)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.NoContent(w)
}
