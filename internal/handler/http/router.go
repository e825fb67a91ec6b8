package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/i18n"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the deployment settings the router needs.
type RouterConfig struct {
	Env             string
	Version         string
	FrontendURL     string
	LogLevel        slog.Level
	StorageBasePath string
}

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Auth       AuthHandler
	Content    ContentHandler
	Dashboard  DashboardHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Meeting    MeetingHandler
	Events     EventsHandler
	Profile    ProfileHandler
	Resume     ResumeHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, sessionService session.SessionService, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "career-gateway"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(i18n.Middleware)

	if cfg.StorageBasePath != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.StorageBasePath)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/content", func(r chi.Router) {
			r.Get("/courses", h.Content.ListCourses)
			r.Get("/blogs", h.Content.ListBlogs)
			r.Get("/blogs/categories", h.Content.ListBlogCategories)
		})

		// EventSource cannot send an Authorization header; the stream
		// authenticates with its own short-lived token.
		r.Get("/events/stream", h.Events.Stream)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/seeker/login", h.Auth.SeekerLogin)
			r.Post("/employer/login", h.Auth.EmployerLogin)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.SessionRequired(sessionService))
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
			})
		})

		// Requires a live session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.SessionRequired(sessionService))

			r.Route("/hr", func(r chi.Router) {
				r.Use(middleware.RequireEmployer)

				r.Get("/dashboard/stats", h.Dashboard.GetStats)
				r.Get("/attendance/statuses", h.Attendance.ListStatuses)

				r.Route("/employees/{id}", func(r chi.Router) {
					r.Get("/", h.Attendance.GetEmployee)
					r.Get("/daily", h.Attendance.GetDailyTotals)
					r.Get("/history", h.Attendance.GetHistory)
					r.Get("/history/export", h.Attendance.ExportHistory)
					r.Post("/clock-in", h.Attendance.ClockIn)
					r.Post("/clock-out", h.Attendance.ClockOut)
					r.Post("/break-start", h.Attendance.BreakStart)
					r.Post("/break-end", h.Attendance.BreakEnd)
				})

				r.Route("/leave-requests", func(r chi.Router) {
					r.Get("/", h.Leave.ListRequests)
					r.Post("/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/{id}/reject", h.Leave.RejectRequest)
				})

				r.Route("/meetings", func(r chi.Router) {
					r.Post("/", h.Meeting.Create)
					r.Get("/login-url", h.Meeting.LoginURL)
					r.Get("/logout-url", h.Meeting.LogoutURL)
				})

				r.Get("/events/token", h.Events.GetSSEToken)
			})

			r.Route("/seeker", func(r chi.Router) {
				r.Use(middleware.RequireSeeker)

				r.Route("/profile", func(r chi.Router) {
					r.Delete("/resumes/{id}", h.Profile.DeleteResume)
					r.Get("/{resource}", h.Profile.List)
					r.Post("/{resource}", h.Profile.Create)
				})

				r.Route("/resumes", func(r chi.Router) {
					r.Get("/primary", h.Resume.GetPrimary)
					r.Put("/primary", h.Resume.SetPrimary)
					r.Post("/pipeline", h.Resume.RunPipeline)
				})
			})
		})
	})
	return r
}
