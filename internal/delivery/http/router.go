package http

import (
	"net/http"

	"doctor-matching/internal/delivery/http/handler"
	"doctor-matching/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	specialtyHandler  *handler.SpecialtyHandler
	authHandler       *handler.AuthHandler
	auditLogHandler   *handler.AuditLogHandler
	healthHandler     *handler.HealthHandler
	metricsHandler    http.Handler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	apiKeyMiddleware  *middleware.APIKeyMiddleware
	rateLimiter       *middleware.RateLimiter
	loggingMiddleware *middleware.LoggingMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	specialtyHandler *handler.SpecialtyHandler,
	authHandler *handler.AuthHandler,
	auditLogHandler *handler.AuditLogHandler,
	healthHandler *handler.HealthHandler,
	metricsHandler http.Handler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	apiKeyMiddleware *middleware.APIKeyMiddleware,
	rateLimiter *middleware.RateLimiter,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		specialtyHandler:  specialtyHandler,
		authHandler:       authHandler,
		auditLogHandler:   auditLogHandler,
		healthHandler:     healthHandler,
		metricsHandler:    metricsHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		apiKeyMiddleware:  apiKeyMiddleware,
		rateLimiter:       rateLimiter,
		loggingMiddleware: loggingMiddleware,
		metricsMiddleware: metricsMiddleware,
	}
}

// Setup registers every route. CORS and request logging wrap the router itself
// so preflight requests are answered before route matching.
func (r *Router) Setup() http.Handler {
	r.router.Use(r.metricsMiddleware.Handle)

	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Throttled credential endpoints
	limited := api.NewRoute().Subrouter()
	limited.Use(r.apiKeyMiddleware.Handle)
	limited.Use(r.rateLimiter.RateLimit)
	limited.HandleFunc("/register", r.doctorHandler.Register).Methods(http.MethodPost)
	limited.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// API key routes
	public := api.NewRoute().Subrouter()
	public.Use(r.apiKeyMiddleware.Handle)
	public.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	public.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	public.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	public.HandleFunc("/specialties", r.specialtyHandler.GetAllSpecialties).Methods(http.MethodGet)

	// Doctor routes (protected)
	protected := api.NewRoute().Subrouter()
	protected.Use(r.apiKeyMiddleware.Handle)
	protected.Use(r.authMiddleware.Authenticate)
	protected.Use(middleware.RequireDoctor)
	protected.HandleFunc("/me", r.authHandler.GetCurrentDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/me/audit-logs", r.auditLogHandler.GetMyAuditLogs).Methods(http.MethodGet)
	protected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/logout/all", r.authHandler.LogoutAll).Methods(http.MethodPost)

	return r.corsMiddleware.Handle(r.loggingMiddleware.Handle(r.router))
}
