package http

import (
	"net/http"

	"go-dental-clinic/config"
	"go-dental-clinic/internal/delivery/http/handler"
	"go-dental-clinic/internal/delivery/http/middleware"
	"go-dental-clinic/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	Log                *logrus.Logger
	CORS               config.CORSConfig
	AuthMiddleware     *middleware.AuthMiddleware
	AuthHandler        *handler.AuthHandler
	PatientHandler     *handler.PatientHandler
	TreatmentHandler   *handler.TreatmentHandler
	AppointmentHandler *handler.AppointmentHandler
	AuditLogHandler    *handler.AuditLogHandler
}

func NewRouter(cfg *RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.CORS))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, "OK", nil)
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/login", cfg.AuthHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", cfg.AuthHandler.RefreshToken).Methods(http.MethodPost)

	// Authenticated routes
	protected := api.NewRoute().Subrouter()
	protected.Use(cfg.AuthMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", cfg.AuthHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", cfg.AuthHandler.Me).Methods(http.MethodGet)

	protected.HandleFunc("/patients", cfg.PatientHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/patients", cfg.PatientHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id:[0-9]+}", cfg.PatientHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id:[0-9]+}", cfg.PatientHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id:[0-9]+}", cfg.PatientHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/treatments", cfg.TreatmentHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/treatments/{id:[0-9]+}", cfg.TreatmentHandler.GetByID).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", cfg.AppointmentHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", cfg.AppointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/stats", cfg.AppointmentHandler.GetStats).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/date/{date}", cfg.AppointmentHandler.GetByDate).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/patient/{patientId:[0-9]+}", cfg.AppointmentHandler.GetByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}", cfg.AppointmentHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}", cfg.AppointmentHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id:[0-9]+}", cfg.AppointmentHandler.Delete).Methods(http.MethodDelete)

	// Admin-only routes
	admin := protected.NewRoute().Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/auth/register", cfg.AuthHandler.Register).Methods(http.MethodPost)
	admin.HandleFunc("/treatments", cfg.TreatmentHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/treatments/{id:[0-9]+}", cfg.TreatmentHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", cfg.AuditLogHandler.GetAll).Methods(http.MethodGet)

	return router
}
