package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, withCORS)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Get("/todos", h.listTodos)
		r.Post("/todos", h.createTodo)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{name}", h.getUser)
			r.Put("/{name}", h.updateUserEmail)
			r.Delete("/{name}", h.deleteUser)
		})
	})

	// static files go last so the API routes take precedence
	h.mountStatic(router)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
