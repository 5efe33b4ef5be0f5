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

	"github.com/amanaz3/staff-hub-suite-sub001/internal/config"
	appHTTP "github.com/amanaz3/staff-hub-suite-sub001/internal/handler/http"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/cron"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/database"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/jwt"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/oauth"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/sse"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/storage"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/repository/postgresql"
	attendanceService "github.com/amanaz3/staff-hub-suite-sub001/internal/service/attendance"
	authService "github.com/amanaz3/staff-hub-suite-sub001/internal/service/auth"
	documentService "github.com/amanaz3/staff-hub-suite-sub001/internal/service/document"
	employeeService "github.com/amanaz3/staff-hub-suite-sub001/internal/service/employee"
	exceptionService "github.com/amanaz3/staff-hub-suite-sub001/internal/service/exception"
	leaveService "github.com/amanaz3/staff-hub-suite-sub001/internal/service/leave"
	notificationService "github.com/amanaz3/staff-hub-suite-sub001/internal/service/notification"
	scheduleService "github.com/amanaz3/staff-hub-suite-sub001/internal/service/schedule"
	timesheetService "github.com/amanaz3/staff-hub-suite-sub001/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.Database.DSN())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	region, err := timezone.NewRegion(cfg.App.RegionOffset)
	if err != nil {
		log.Fatal("Invalid region offset:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	exceptionRepo := postgresql.NewExceptionRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	hub := sse.NewHub()
	logger := slog.Default()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, logger, notificationService.Config{})

	authSvc := authService.NewAuthService(userRepo, employeeRepo, JWTService, GoogleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, region)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workScheduleRepo, region)
	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo, assignmentRepo, employeeRepo, notificationSvc, region)
	exceptionSvc := exceptionService.NewExceptionService(exceptionRepo, employeeRepo, notificationSvc, region)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, notificationSvc, region)
	documentSvc := documentService.NewDocumentService(documentRepo, employeeRepo, fileStorage, notificationSvc)
	timesheetSvc := timesheetService.NewTimesheetService(
		attendanceRepo,
		workScheduleRepo,
		exceptionRepo,
		leaveRepo,
		region,
		timesheetService.Config{
			BreakDeductionMinutes: cfg.Timesheet.BreakDeductionMinutes,
			BreakThresholdMinutes: cfg.Timesheet.BreakThresholdMinutes,
		},
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(
		attendanceRepo,
		employeeRepo,
		workScheduleRepo,
		leaveRepo,
		notificationSvc,
		region,
	).RegisterJobs(scheduler)
	scheduler.Start()

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, JWTService),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Timesheet:    appHTTP.NewTimesheetHandler(timesheetSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Schedule:     appHTTP.NewScheduleHandler(scheduleSvc),
		Exception:    appHTTP.NewExceptionHandler(exceptionSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Document:     appHTTP.NewDocumentHandler(documentSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, JWTService),
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Environment:    cfg.App.Env,
		FilesDir:       cfg.Storage.BasePath,
	}, JWTService, handlers)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // SSE streams stay open indefinitely
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	scheduler.Stop()
	notificationSvc.Stop()
}
