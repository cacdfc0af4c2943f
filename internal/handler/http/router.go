package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/rcc-dimension/attendance-backend-go/internal/handler/http/middleware"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/jwtoken"
)

func NewRouter(
	tokenService jwtoken.Service,
	authHandler AuthHandler,
	directoryHandler DirectoryHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
	)

	// The frontend is served from a separate origin, so CORS stays wide
	// open the way the deployment expects.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/DropdownUserData", directoryHandler.DropdownUserData)
		r.Post("/login", authHandler.Login)

		r.Get("/attendance", attendanceHandler.GetAttendance)
		r.Post("/attendance-Form", attendanceHandler.SubmitAttendance)
		r.Get("/getAttendance-Data", attendanceHandler.GetAttendanceData)

		r.Get("/getFormData", leaveHandler.GetFormData)
		r.Post("/leave-form", leaveHandler.SubmitLeave)
		r.Post("/Approve-leave", leaveHandler.ApproveLeave)

		r.Get("/getEmployees", directoryHandler.GetEmployees)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenService.JWTAuth()))
			r.Use(middleware.AuthRequired(tokenService.JWTAuth()))

			r.Get("/user", authHandler.Me)
		})
	})

	return r
}
