package http

import (
	"net/http"

	"clinic-appointment-service/internal/delivery/http/handler"
	"clinic-appointment-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	adminHandler        *handler.AdminHandler
	patientHandler      *handler.PatientHandler
	doctorHandler       *handler.DoctorHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggerMiddleware    *middleware.RequestLoggerMiddleware
}

func NewRouter(
	adminHandler *handler.AdminHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggerMiddleware *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		adminHandler:        adminHandler,
		patientHandler:      patientHandler,
		doctorHandler:       doctorHandler,
		appointmentHandler:  appointmentHandler,
		prescriptionHandler: prescriptionHandler,
		corsMiddleware:      corsMiddleware,
		loggerMiddleware:    loggerMiddleware,
	}
}

// Setup wires every route. The token rides in the path on protected
// routes; each handler validates it for the role the route requires.
func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Admin
	r.router.HandleFunc("/admin/login", r.adminHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/adminDashboard/{token}", r.adminHandler.Dashboard).Methods(http.MethodGet)

	// Patient
	r.router.HandleFunc("/patient/signup", r.patientHandler.Signup).Methods(http.MethodPost)
	r.router.HandleFunc("/patient/login", r.patientHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/patient/details/{token}", r.patientHandler.Details).Methods(http.MethodGet)
	r.router.HandleFunc("/patient/appointments/{token}", r.patientHandler.Appointments).Methods(http.MethodGet)
	r.router.HandleFunc("/patient/filter/{token}", r.patientHandler.Filter).Methods(http.MethodGet)

	// Doctor
	r.router.HandleFunc("/doctor/login", r.doctorHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/doctor/availability/{user}/{doctorId}/{date}/{token}", r.doctorHandler.Availability).Methods(http.MethodGet)
	r.router.HandleFunc("/doctor/filter/{name}/{time}/{speciality}", r.doctorHandler.Filter).Methods(http.MethodGet)
	r.router.HandleFunc("/doctor/{id}/{token}", r.doctorHandler.Delete).Methods(http.MethodDelete)
	r.router.HandleFunc("/doctor/{token}", r.doctorHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/doctor/{token}", r.doctorHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/doctorDashboard/{token}", r.doctorHandler.Dashboard).Methods(http.MethodGet)

	// Appointments
	r.router.HandleFunc("/appointments/{date}/{patientName}/{token}", r.appointmentHandler.DoctorDay).Methods(http.MethodGet)
	r.router.HandleFunc("/appointments/{token}", r.appointmentHandler.Book).Methods(http.MethodPost)
	r.router.HandleFunc("/appointments/{token}", r.appointmentHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/appointments/{id}/{token}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	// Prescriptions
	r.router.HandleFunc("/prescription/{appointmentId}/{token}", r.prescriptionHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/prescription/{token}", r.prescriptionHandler.Save).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggerMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
