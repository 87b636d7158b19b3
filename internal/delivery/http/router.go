package http

import (
	"net/http"

	"enfermeria-api/internal/delivery/http/handler"
	"enfermeria-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	patientHandler    *handler.PatientHandler
	vitalSignHandler  *handler.VitalSignHandler
	statisticsHandler *handler.StatisticsHandler
	sensorHandler     *handler.SensorHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	vitalSignHandler *handler.VitalSignHandler,
	statisticsHandler *handler.StatisticsHandler,
	sensorHandler *handler.SensorHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		userHandler:       userHandler,
		patientHandler:    patientHandler,
		vitalSignHandler:  vitalSignHandler,
		statisticsHandler: statisticsHandler,
		sensorHandler:     sensorHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Sensor ingestion (public, the ESP32 cannot hold a session)
	api.HandleFunc("/esp32/guardar-lectura", r.sensorHandler.SaveReading).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/profile", r.authHandler.GetProfile).Methods(http.MethodGet)
	authProtected.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Everything below requires an authenticated staff session. Role checks
	// live in the usecases, not in the routing table.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// User management
	protected.HandleFunc("/users/roles", r.userHandler.GetAllRoles).Methods(http.MethodGet)
	protected.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	protected.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	protected.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Vital signs
	protected.HandleFunc("/vital-signs/patient/{patientId}", r.vitalSignHandler.GetVitalSignsByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/vital-signs/patient/{patientId}", r.vitalSignHandler.CreateVitalSign).Methods(http.MethodPost)
	protected.HandleFunc("/vital-signs/{id}", r.vitalSignHandler.UpdateVitalSign).Methods(http.MethodPut)
	protected.HandleFunc("/vital-signs/{id}", r.vitalSignHandler.DeleteVitalSign).Methods(http.MethodDelete)

	// Statistics
	protected.HandleFunc("/statistics", r.statisticsHandler.GetDashboard).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
