// Package api exposes PyLearn sessions over HTTP. Each login opens an
// isolated session addressed by a signed token.
package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/abhisek/pylearn/internal/config"
	"github.com/abhisek/pylearn/internal/session"
)

// Deps are the collaborators of the HTTP app.
type Deps struct {
	Config   *config.Config
	Sessions *session.Manager
	Logger   *log.Logger
}

// New builds the fiber app with middleware and routes.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "pylearn",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(fiberrecover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Config.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,OPTIONS",
	}))
	if d.Logger != nil {
		app.Use(LoggingMiddleware(d.Logger))
	}

	tokens := NewTokenIssuer(d.Config.TokenSecret, d.Config.TokenTTL)
	SetupRoutes(app, NewHandler(d.Sessions, tokens), RequireSession(tokens, d.Sessions))
	return app
}

// SetupRoutes registers every endpoint. auth guards all routes except login.
func SetupRoutes(app *fiber.App, h *Handler, auth fiber.Handler) {
	app.Post("/api/auth/login", h.Login)

	api := app.Group("/api", auth)
	api.Post("/auth/logout", h.Logout)

	api.Get("/user", h.GetUser)
	api.Get("/progress", h.GetProgress)
	api.Get("/activity", h.GetActivity)

	api.Get("/stages", h.GetStages)
	api.Get("/stages/:id", h.GetStage)
	api.Get("/stages/:id/lessons", h.GetStageLessons)
	api.Get("/stages/:id/problems", h.GetStageProblems)
	api.Get("/stages/:id/projects", h.GetStageProjects)
	api.Get("/stages/:id/resources", h.GetStageResources)

	api.Get("/lessons/:id", h.GetLesson)
	api.Patch("/lessons/:id/complete", h.CompleteLesson)

	api.Get("/problems/:id", h.GetProblem)
	api.Patch("/problems/:id/complete", h.CompleteProblem)
	api.Post("/problems/:id/run", h.RunCode)
	api.Post("/problems/:id/submit", h.SubmitSolution)

	api.Get("/projects/:id", h.GetProject)
	api.Patch("/projects/:id/complete", h.CompleteProject)
	api.Post("/projects/:id/start", h.StartProject)
}
