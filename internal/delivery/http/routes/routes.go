package routes

import (
	"log"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/user"
	"job-portal/internal/infrastructure/persistence/postgres"
	"job-portal/internal/infrastructure/session"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires repositories, services, and handlers onto the fiber app. The
// session resolver runs globally; the gate is attached per route.
func Register(app *fiber.App, cfg config.Config, db database.DB, sessions session.Store, logger *log.Logger) {
	if app == nil {
		return
	}

	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, sessions, cfg.Session)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)

	healthHandler := handler.NewHealthHandler()
	authHandler := handler.NewAuthHandler(authUC, cfg.Session)
	jobsHandler := handler.NewJobsHandler(jobUC)
	applicationsHandler := handler.NewApplicationsHandler(applicationUC)

	sessionMw := middleware.NewSessionMiddleware(authUC, cfg.Session.CookieName, logger)
	app.Use(sessionMw.Middleware())

	guard := middleware.NewGuard()

	healthHandler.RegisterRoutes(app)
	authHandler.RegisterRoutes(app.Group("/auth"))

	// page stand-in; rendering lives outside this service but the gate does not
	app.Get("/jobs/post", jobsHandler.PostPage, guard.RequireRoles(user.RoleRecruiter, user.RoleAdmin))

	api := app.Group("/api/v1")
	api.Get("/jobs", jobsHandler.List)
	api.Post("/jobs", jobsHandler.Create, guard.RequireRoles(user.RoleRecruiter, user.RoleAdmin))
	api.Post("/jobs/:id/apply", applicationsHandler.Apply)
	api.Get("/admin/applications", applicationsHandler.ListForAdmin, guard.RequireRoles(user.RoleAdmin))
	api.Get("/recruiter/applications", applicationsHandler.ListForRecruiter, guard.RequireRoles(user.RoleRecruiter, user.RoleAdmin))
	api.Get("/my/applications", applicationsHandler.ListForCandidate, guard.RequireRoles(user.RoleCandidate))
}
