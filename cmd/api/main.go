package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/config"
	appHTTP "github.com/cmlabs-hris/career-gateway-go/internal/handler/http"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/cron"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/database"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/i18n"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/secret"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/sse"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/storage"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/upstream"
	"github.com/cmlabs-hris/career-gateway-go/internal/repository/hrms"
	"github.com/cmlabs-hris/career-gateway-go/internal/repository/meet"
	"github.com/cmlabs-hris/career-gateway-go/internal/repository/portal"
	"github.com/cmlabs-hris/career-gateway-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/career-gateway-go/internal/service/attendance"
	contentService "github.com/cmlabs-hris/career-gateway-go/internal/service/content"
	dashboardService "github.com/cmlabs-hris/career-gateway-go/internal/service/dashboard"
	leaveService "github.com/cmlabs-hris/career-gateway-go/internal/service/leave"
	meetingService "github.com/cmlabs-hris/career-gateway-go/internal/service/meeting"
	profileService "github.com/cmlabs-hris/career-gateway-go/internal/service/profile"
	resumeService "github.com/cmlabs-hris/career-gateway-go/internal/service/resume"
	sessionService "github.com/cmlabs-hris/career-gateway-go/internal/service/session"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).With(
		slog.String("app", "career-gateway"),
		slog.String("env", cfg.App.Env),
	))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := i18n.Init(cfg.App.DefaultLocale); err != nil {
		log.Fatal("Failed to load translations:", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := postgresql.Migrate(ctx, db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	box, err := secret.NewBox(cfg.Session.EncryptionKey)
	if err != nil {
		log.Fatal("Failed to initialize token sealing:", err)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage types: ", cfg.Storage.Type)
	}

	// Upstream services
	hrmsHTTP := oauth.NewServiceHTTPClient(ctx, oauth.ServiceClientConfig{
		ClientID:     cfg.HRMS.ClientID,
		ClientSecret: cfg.HRMS.ClientSecret,
		TokenURL:     cfg.HRMS.TokenURL,
		Scopes:       cfg.HRMS.Scopes,
		StaticToken:  cfg.HRMS.APIToken,
		Timeout:      cfg.HRMS.Timeout,
		Header:       "X-Service-Authorization",
	})
	hrmsClient := upstream.NewClient("hrms", cfg.HRMS.BaseURL, hrmsHTTP)
	portalClient := upstream.NewClient("portal", cfg.Portal.BaseURL, &http.Client{Timeout: cfg.Portal.Timeout})
	meetClient := upstream.NewClient("meet", cfg.Meet.BaseURL, &http.Client{Timeout: cfg.Meet.Timeout})

	resolver := upstream.NewResolver(hrmsClient, cfg.HRMS.Endpoints.Resources)
	resolveCtx, cancelResolve := context.WithTimeout(ctx, 30*time.Second)
	if err := resolver.Resolve(resolveCtx); err != nil {
		slog.Warn("HRMS endpoints not fully resolved, retrying in background", "error", err)
	}
	cancelResolve()

	backend := hrms.NewBackend(hrmsClient, resolver, cfg.HRMS.Endpoints.Actions, cfg.Location())

	// Repositories
	sessionRepo := postgresql.NewSessionRepository(db, box)
	primaryResumeRepo := postgresql.NewPrimaryResumeRepository(db)
	timeSessionRepo := hrms.NewSessionRepository(backend)
	recordRepo := hrms.NewRecordRepository(backend)
	employeeRepo := hrms.NewEmployeeRepository(backend)
	statsRepo := hrms.NewStatsRepository(backend)
	leaveRepo := hrms.NewLeaveRequestRepository(backend)
	contentRepo := portal.NewContentRepository(portalClient)
	profileRepo := portal.NewProfileRepository(portalClient)
	resumeRepo := portal.NewResumeRepository(portalClient)
	issuer := portal.NewIssuer(portalClient)
	scheduler := meet.NewScheduler(meetClient)

	// Services
	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		log.Fatal("Failed to initialize JWT service:", err)
	}
	hub := sse.NewHub()

	sessionSvc := sessionService.NewSessionService(sessionRepo, primaryResumeRepo, issuer, JWTService, cfg.Session.TTL)
	attendanceSvc := attendanceService.NewAttendanceService(timeSessionRepo, recordRepo, employeeRepo, hub, fileStorage, cfg.Location())
	dashboardSvc := dashboardService.NewDashboardService(statsRepo, cfg.HRMS.StatsStaleAfter)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	contentSvc := contentService.NewContentService(contentRepo)
	profileSvc := profileService.NewProfileService(profileRepo)
	resumeSvc := resumeService.NewResumeService(resumeRepo)
	meetingSvc := meetingService.NewMeetingService(scheduler)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Env:             cfg.App.Env,
		Version:         version,
		FrontendURL:     cfg.App.FrontendURL,
		LogLevel:        level,
		StorageBasePath: cfg.Storage.BasePath,
	}, JWTService, sessionSvc, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(sessionSvc),
		Content:    appHTTP.NewContentHandler(contentSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Meeting:    appHTTP.NewMeetingHandler(meetingSvc),
		Events:     appHTTP.NewEventsHandler(hub, JWTService),
		Profile:    appHTTP.NewProfileHandler(profileSvc),
		Resume:     appHTTP.NewResumeHandler(sessionSvc, resumeSvc),
	})

	// Background jobs
	jobs := cron.NewScheduler()
	cron.NewGatewayJobs(resolver, sessionSvc, cfg.HRMS.ResolveInterval, cfg.Session.PurgeInterval).RegisterJobs(jobs)
	jobs.Start(ctx)
	defer jobs.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	fmt.Printf("Server running at http://localhost%s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Println("Server error:", err)
	}
}
