package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/handler/http/middleware"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/jwt"
)

type RouterConfig struct {
	AllowedOrigins []string
	Environment    string
	// FilesDir serves uploaded files when local storage is used. Empty
	// disables the static route.
	FilesDir string
}

type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Timesheet    TimesheetHandler
	Employee     EmployeeHandler
	Schedule     ScheduleHandler
	Exception    ExceptionHandler
	Leave        LeaveHandler
	Document     DocumentHandler
	Notification NotificationHandler
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staff-hub"),
		slog.String("env", cfg.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	if cfg.FilesDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.FilesDir))
		r.Handle("/files/*", http.StripPrefix("/files/", fileServer))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// SSE stream authenticates with a short-lived token in the query
		// string, so it sits outside the JWT middleware chain.
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", h.Auth.Me)
				r.Post("/change-password", h.Auth.ChangePassword)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/my", h.Attendance.GetMyDays)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.List)
					r.Get("/{id}", h.Attendance.Get)
					r.Put("/{id}", h.Attendance.Correct)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/my", h.Timesheet.GetMyMonth)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/employees/{id}", h.Timesheet.GetEmployeeMonth)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)

					r.Post("/{id}/documents", h.Document.Upload)
					r.Get("/{id}/documents", h.Document.ListByEmployee)
					r.Get("/{employeeID}/schedule-assignments", h.Schedule.ListAssignments)
				})
			})

			r.Route("/documents", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/{id}/download", h.Document.Download)
				r.Delete("/{id}", h.Document.Delete)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/my-day", h.Schedule.MyDay)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Schedule.Create)
					r.Get("/", h.Schedule.List)
					r.Get("/{id}", h.Schedule.Get)
					r.Put("/{id}", h.Schedule.Update)
					r.Delete("/{id}", h.Schedule.Delete)

					r.Post("/assignments", h.Schedule.Assign)
					r.Delete("/assignments/{id}", h.Schedule.DeleteAssignment)
				})
			})

			r.Route("/exceptions", func(r chi.Router) {
				r.Post("/", h.Exception.Submit)
				r.Get("/my", h.Exception.GetMyRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", h.Exception.ListPending)
					r.Get("/{id}", h.Exception.Get)
					r.Post("/{id}/approve", h.Exception.Approve)
					r.Post("/{id}/reject", h.Exception.Reject)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/my", h.Leave.GetMyRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", h.Leave.ListPending)
					r.Get("/{id}", h.Leave.Get)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/read", h.Notification.MarkAsRead)
				r.Post("/read-all", h.Notification.MarkAllAsRead)
				r.Get("/sse-token", h.Notification.GetSSEToken)
			})
		})
	})

	return r
}
