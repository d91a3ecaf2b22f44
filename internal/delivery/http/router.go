package http

import (
	"net/http"

	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	patientHandler       *handler.PatientHandler
	doctorHandler        *handler.DoctorHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	billHandler          *handler.BillHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	rateLimiter          *middleware.RateLimiter
}

type RouterDeps struct {
	AuthHandler          *handler.AuthHandler
	PatientHandler       *handler.PatientHandler
	DoctorHandler        *handler.DoctorHandler
	AppointmentHandler   *handler.AppointmentHandler
	MedicalRecordHandler *handler.MedicalRecordHandler
	BillHandler          *handler.BillHandler
	AuditLogHandler      *handler.AuditLogHandler
	AuthMiddleware       *middleware.AuthMiddleware
	CORSMiddleware       *middleware.CORSMiddleware
	RateLimiter          *middleware.RateLimiter
}

func NewRouter(deps RouterDeps) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          deps.AuthHandler,
		patientHandler:       deps.PatientHandler,
		doctorHandler:        deps.DoctorHandler,
		appointmentHandler:   deps.AppointmentHandler,
		medicalRecordHandler: deps.MedicalRecordHandler,
		billHandler:          deps.BillHandler,
		auditLogHandler:      deps.AuditLogHandler,
		authMiddleware:       deps.AuthMiddleware,
		corsMiddleware:       deps.CORSMiddleware,
		rateLimiter:          deps.RateLimiter,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.Handle("/login", r.rateLimiter.Limit(http.HandlerFunc(r.authHandler.Login))).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Any authenticated role; the usecases scope results to the caller
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	// Role is checked by the usecase so a non-patient gets 401, not 403
	protected.Handle("/appointments/auto", r.rateLimiter.Limit(http.HandlerFunc(r.appointmentHandler.AutoSchedule))).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.ListMine).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records", r.medicalRecordHandler.ListMine).Methods(http.MethodGet)
	protected.HandleFunc("/bills", r.billHandler.ListMine).Methods(http.MethodGet)

	// Patient routes
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/profile", r.patientHandler.UpdateSelfProfile).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetRecentAuditLogs).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	})

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "ok", map[string]string{"status": "ok"})
}
