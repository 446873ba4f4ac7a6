// Package router assembles the route table and middleware chain of
// the portfolio API.
package router

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/dtroode/portfolio-server/internal/api/http/handler"
	"github.com/dtroode/portfolio-server/internal/api/http/middleware"
	"github.com/dtroode/portfolio-server/internal/logger"
)

// Router wires handlers and middleware into an http.Handler.
type Router struct {
	auth           *handler.Auth
	project        *handler.Project
	skill          *handler.Skill
	timeline       *handler.Timeline
	application    *handler.Application
	message        *handler.Message
	authenticate   *middleware.Authenticate
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates new Router instance.
func New(
	auth *handler.Auth,
	project *handler.Project,
	skill *handler.Skill,
	timeline *handler.Timeline,
	application *handler.Application,
	message *handler.Message,
	authenticate *middleware.Authenticate,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		auth:           auth,
		project:        project,
		skill:          skill,
		timeline:       timeline,
		application:    application,
		message:        message,
		authenticate:   authenticate,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the route table and returns the handler chain with
// CORS and request logging applied.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()
	protected := func(h http.HandlerFunc) http.Handler {
		return r.authenticate.Handle(h)
	}

	// User / credential lifecycle.
	mux.HandleFunc("POST /api/v1/user/register", r.auth.Register)
	mux.HandleFunc("POST /api/v1/user/login", r.auth.Login)
	mux.Handle("GET /api/v1/user/logout", protected(r.auth.Logout))
	mux.Handle("GET /api/v1/user/me", protected(r.auth.Me))
	mux.Handle("PUT /api/v1/user/me", protected(r.auth.UpdateProfile))
	mux.Handle("PUT /api/v1/user/password", protected(r.auth.ChangePassword))
	mux.HandleFunc("POST /api/v1/user/password/forgot", r.auth.ForgotPassword)
	mux.HandleFunc("PUT /api/v1/user/password/reset/{token}", r.auth.ResetPassword)
	mux.HandleFunc("GET /api/v1/user/portfolio", r.auth.Portfolio)

	// Projects.
	mux.Handle("POST /api/v1/project", protected(r.project.Add))
	mux.HandleFunc("GET /api/v1/project", r.project.GetAll)
	mux.HandleFunc("GET /api/v1/project/{id}", r.project.Get)
	mux.Handle("PUT /api/v1/project/{id}", protected(r.project.Update))
	mux.Handle("DELETE /api/v1/project/{id}", protected(r.project.Delete))

	// Skills.
	mux.Handle("POST /api/v1/skill", protected(r.skill.Add))
	mux.HandleFunc("GET /api/v1/skill", r.skill.GetAll)
	mux.Handle("PUT /api/v1/skill/{id}", protected(r.skill.Update))
	mux.Handle("DELETE /api/v1/skill/{id}", protected(r.skill.Delete))

	// Timeline.
	mux.Handle("POST /api/v1/timeline", protected(r.timeline.Add))
	mux.HandleFunc("GET /api/v1/timeline", r.timeline.GetAll)
	mux.Handle("DELETE /api/v1/timeline/{id}", protected(r.timeline.Delete))

	// Software applications.
	mux.Handle("POST /api/v1/softwareapplication", protected(r.application.Add))
	mux.HandleFunc("GET /api/v1/softwareapplication", r.application.GetAll)
	mux.Handle("DELETE /api/v1/softwareapplication/{id}", protected(r.application.Delete))

	// Contact messages.
	mux.HandleFunc("POST /api/v1/message", r.message.Add)
	mux.Handle("GET /api/v1/message", protected(r.message.GetAll))
	mux.Handle("DELETE /api/v1/message/{id}", protected(r.message.Delete))

	corsLayer := cors.New(cors.Options{
		AllowedOrigins:   r.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	logging := middleware.NewLogging(r.logger)

	return logging.Handle(corsLayer.Handler(mux))
}
