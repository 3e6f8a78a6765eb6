package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edusphere/edusphere-backend/api/controllers"
	"github.com/edusphere/edusphere-backend/api/middleware"
	"github.com/edusphere/edusphere-backend/internal/auth"
	"github.com/edusphere/edusphere-backend/internal/catalog"
	"github.com/edusphere/edusphere-backend/internal/colleges"
	"github.com/edusphere/edusphere-backend/internal/stats"
	"github.com/edusphere/edusphere-backend/internal/students"
	"github.com/edusphere/edusphere-backend/internal/verification"
	"github.com/edusphere/edusphere-backend/pkg/auth/session"
	"github.com/edusphere/edusphere-backend/pkg/config"
	"github.com/edusphere/edusphere-backend/pkg/db"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	"github.com/edusphere/edusphere-backend/pkg/logger"
	"github.com/edusphere/edusphere-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              *db.Client
	Redis           *redis.Client
	SessionManager  sessionManager
	MetricsRegistry *prometheus.Registry

	AuthService         auth.Service
	CollegeService      colleges.Service
	VerificationService verification.Service
	StudentService      students.Service
	CatalogService      catalog.Service
	StatsService        stats.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	var dbProbe, cacheProbe controllers.Pinger
	if deps.DB != nil {
		dbProbe = deps.DB
	}
	if deps.Redis != nil {
		cacheProbe = deps.Redis
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbProbe, cacheProbe, logg))
	})

	if deps.MetricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/public", func(r chi.Router) {
		r.Get("/stats", controllers.StatsSummary(deps.StatsService, logg))
		r.Get("/scholarships", controllers.ScholarshipList(deps.CatalogService, logg))
		r.Get("/trending-courses", controllers.TrendingCourseList(deps.CatalogService, logg))
		r.Get("/colleges", controllers.BrowseColleges(deps.StudentService, logg))
		r.Get("/colleges/{collegeId}", controllers.BrowseCollegeDetail(deps.StudentService, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).Post("/register", controllers.RegisterCollege(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.CollegeLogin(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/gov/login", controllers.GovLogin(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/otp/request", controllers.StudentOTPRequest(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/otp/verify", controllers.StudentOTPVerify(deps.AuthService, logg))
		r.Post("/refresh", controllers.Refresh(deps.AuthService, logg))
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
			r.Post("/logout", controllers.Logout(deps.AuthService, logg))
		})
	})

	r.Route("/api/v1/colleges", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Use(middleware.RequireRole(string(enums.RoleCollege), logg))
		r.Get("/me", controllers.CollegeProfile(deps.CollegeService, logg))
		r.Post("/me/submission", controllers.CollegeSubmit(deps.CollegeService, logg))
	})

	r.Route("/api/v1/gov", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Use(middleware.RequireRole(string(enums.RoleGov), logg))

		r.Route("/colleges", func(r chi.Router) {
			r.Get("/pending", controllers.GovPendingQueue(deps.VerificationService, logg))
			r.Get("/approved", controllers.GovApprovedQueue(deps.VerificationService, logg))
			r.Get("/{collegeId}", controllers.GovCollegeDetails(deps.VerificationService, logg))
			r.Get("/{collegeId}/logs", controllers.GovVerificationLogs(deps.VerificationService, logg))
			r.Post("/{collegeId}/action", controllers.GovVerifyAction(deps.VerificationService, logg))
		})

		r.Route("/scholarships", func(r chi.Router) {
			r.Post("/", controllers.ScholarshipCreate(deps.CatalogService, logg))
			r.Put("/{scholarshipId}", controllers.ScholarshipUpdate(deps.CatalogService, logg))
			r.Delete("/{scholarshipId}", controllers.ScholarshipDelete(deps.CatalogService, logg))
		})
		r.Route("/trending-courses", func(r chi.Router) {
			r.Post("/", controllers.TrendingCourseCreate(deps.CatalogService, logg))
			r.Put("/{courseId}", controllers.TrendingCourseUpdate(deps.CatalogService, logg))
			r.Delete("/{courseId}", controllers.TrendingCourseDelete(deps.CatalogService, logg))
		})
	})

	r.Route("/api/v1/students", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Use(middleware.RequireRole(string(enums.RoleStudent), logg))
		r.Get("/me", controllers.StudentProfile(deps.StudentService, logg))
		r.Put("/me/profile", controllers.StudentProfileSave(deps.StudentService, logg))
	})

	return r
}
