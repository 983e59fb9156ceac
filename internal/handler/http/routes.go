package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the API router.
//
//	GET    /api/health
//	GET    /api/version
//	POST   /api/auth/register
//	POST   /api/auth/login
//	POST   /api/auth/logout   (session)
//	GET    /api/auth/me       (session)
//	GET    /api/tasks         (session)
//	POST   /api/tasks         (session)
//	GET    /api/tasks/{id}    (session)
//	PUT    /api/tasks/{id}    (session)
//	DELETE /api/tasks/{id}    (session)
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withSecurityHeaders)
	router.Use(h.withCORS)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/logout", h.logout)
				r.Get("/me", h.me)
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listTasks)
			r.Post("/", h.createTask)
			r.Get("/{id}", h.getTask)
			r.Put("/{id}", h.updateTask)
			r.Delete("/{id}", h.deleteTask)
		})
	})

	return router
}
