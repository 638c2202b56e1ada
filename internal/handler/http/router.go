package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/DLT-Africa-Hub/Recruita/internal/config"
	"github.com/DLT-Africa-Hub/Recruita/internal/handler/http/middleware"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Graduate     GraduateHandler
	Company      CompanyHandler
	Job          JobHandler
	Admin        AdminHandler
	Interview    InterviewHandler
	Notification NotificationHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "recruita"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// SSE stream authenticates with its own short-lived token
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", h.Job.List)
				r.Get("/{id}", h.Job.Get)
			})

			r.Get("/interviews/room/{slug}", h.Interview.Room)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Get("/sse-token", h.Notification.GetSSEToken)
				r.Patch("/read", h.Notification.MarkAsRead)
				r.Patch("/read-all", h.Notification.MarkAllAsRead)
				r.Delete("/{id}", h.Notification.Delete)
			})

			// Graduate only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireGraduate)

				r.Route("/graduates/me", func(r chi.Router) {
					r.Get("/", h.Graduate.GetProfile)
					r.Put("/", h.Graduate.UpsertProfile)
					r.Post("/assessment", h.Graduate.SubmitAssessment)
					r.Get("/matches", h.Graduate.Matches)
				})

				r.Route("/applications", func(r chi.Router) {
					r.Post("/", h.Graduate.Apply)
					r.Get("/my", h.Graduate.MyApplications)
				})

				r.Route("/offers", func(r chi.Router) {
					r.Get("/my", h.Graduate.MyOffers)
					r.Post("/{id}/accept", h.Graduate.AcceptOffer)
					r.Post("/{id}/decline", h.Graduate.DeclineOffer)
				})

				r.Post("/interviews/{id}/select-slot", h.Graduate.SelectInterviewSlot)
			})

			// Company only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireCompany)

				r.Route("/companies/me", func(r chi.Router) {
					r.Get("/", h.Company.GetProfile)
					r.Put("/", h.Company.UpsertProfile)

					r.Route("/jobs", func(r chi.Router) {
						r.Get("/", h.Company.MyJobs)
						r.Post("/", h.Company.CreateJob)
						r.Put("/{id}", h.Company.UpdateJob)
						r.Delete("/{id}", h.Company.DeleteJob)
						r.Get("/{id}/applications", h.Company.JobApplications)
						r.Get("/{id}/matches", h.Company.JobMatches)
					})

					r.Patch("/applications/{id}/status", h.Company.UpdateApplicationStatus)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/admin", func(r chi.Router) {
					r.Get("/dashboard", h.Admin.Dashboard)

					r.Route("/users", func(r chi.Router) {
						r.Get("/", h.Admin.ListUsers)
						r.Delete("/{id}", h.Admin.DeleteUser)
					})

					r.Get("/graduates", h.Admin.ListGraduates)

					r.Route("/companies", func(r chi.Router) {
						r.Get("/", h.Admin.ListCompanies)
						r.Get("/{id}", h.Admin.GetCompany)
						r.Patch("/{id}/active", h.Admin.SetCompanyActive)
					})

					r.Route("/jobs", func(r chi.Router) {
						r.Get("/", h.Admin.ListJobs)
						r.Get("/{id}", h.Admin.GetJob)
						r.Patch("/{id}", h.Admin.UpdateJob)
						r.Delete("/{id}", h.Admin.DeleteJob)
						r.Get("/{id}/applications", h.Admin.JobApplications)
					})

					r.Get("/offers/{id}", h.Admin.GetOffer)
					r.Post("/messages", h.Admin.SendMessage)

					r.Route("/applications", func(r chi.Router) {
						r.Get("/{id}", h.Admin.GetApplication)
						r.Patch("/{id}/status", h.Admin.UpdateApplicationStatus)
						// Older admin clients send PUT for the same update.
						r.Put("/{id}/status", h.Admin.UpdateApplicationStatus)
					})

					r.Route("/interviews", func(r chi.Router) {
						r.Get("/", h.Interview.List)
						r.Post("/", h.Interview.Schedule)
						r.Post("/{id}/cancel", h.Interview.Cancel)
					})
				})
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
