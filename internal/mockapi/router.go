package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the reqres-compatible routes under /api.
func NewRouter(opts Options) http.Handler {
	opts.setDefaults()
	h := NewHandler(opts)

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware(opts.Logger))
	r.Use(loggingMiddleware(opts.Logger))

	r.Get("/healthz", h.healthz)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiKeyMiddleware(opts.APIKey))

		r.Post("/login", h.login)
		r.Get("/users", h.listUsers)
		r.Post("/users", h.createUser)
		r.Get("/users/{id}", h.getUser)
		r.Put("/users/{id}", h.updateUser)
		r.Patch("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)
	})

	return r
}
