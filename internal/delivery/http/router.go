package http

import (
	"net/http"

	"go-clinic-management/internal/delivery/http/handler"
	"go-clinic-management/internal/delivery/http/middleware"
	"go-clinic-management/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	authHandler        *handler.AuthHandler
	healthHandler      *handler.HealthHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		authHandler:        authHandler,
		healthHandler:      healthHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

// guard wraps h with the role gate for permission.
func (r *Router) guard(permission entity.Permission, h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Require(permission)(h)
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(middleware.RequestID)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	// Preflight requests need a matching route for the middleware to run
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Health check
	r.router.HandleFunc("/health", r.healthHandler.Liveness).Methods(http.MethodGet)
	r.router.HandleFunc("/health/ready", r.healthHandler.Readiness).Methods(http.MethodGet)

	// Auth
	r.router.HandleFunc("/login/{role}", r.authHandler.Login).Methods(http.MethodPost)
	r.router.Handle("/logout", r.authMiddleware.Authenticate(http.HandlerFunc(r.authHandler.Logout))).Methods(http.MethodPost)

	// Patients
	r.router.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	r.router.Handle("/patients", r.guard(entity.PermissionCreatePatient, r.patientHandler.CreatePatient)).Methods(http.MethodPost)
	r.router.Handle("/patients/{id}", r.guard(entity.PermissionUpdatePatient, r.patientHandler.UpdatePatient)).Methods(http.MethodPatch)
	r.router.Handle("/patients/{id}", r.guard(entity.PermissionDeletePatient, r.patientHandler.DeletePatient)).Methods(http.MethodDelete)

	// Doctors
	r.router.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	r.router.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	r.router.Handle("/doctors", r.guard(entity.PermissionCreateDoctor, r.doctorHandler.CreateDoctor)).Methods(http.MethodPost)
	r.router.Handle("/doctors/{id}", r.guard(entity.PermissionUpdateDoctor, r.doctorHandler.UpdateDoctor)).Methods(http.MethodPatch)
	r.router.Handle("/doctors/{id}", r.guard(entity.PermissionDeleteDoctor, r.doctorHandler.DeleteDoctor)).Methods(http.MethodDelete)

	// Appointments
	r.router.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	r.router.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	r.router.Handle("/appointments", r.guard(entity.PermissionCreateAppointment, r.appointmentHandler.CreateAppointment)).Methods(http.MethodPost)
	r.router.Handle("/appointments/{id}", r.guard(entity.PermissionAssignAppointment, r.appointmentHandler.AssignDoctor)).Methods(http.MethodPatch)
	r.router.Handle("/appointments/{id}/status", r.guard(entity.PermissionSetAppointmentStatus, r.appointmentHandler.UpdateStatus)).Methods(http.MethodPatch)
	r.router.Handle("/appointments/{id}", r.guard(entity.PermissionDeleteAppointment, r.appointmentHandler.DeleteAppointment)).Methods(http.MethodDelete)

	return r.router
}
