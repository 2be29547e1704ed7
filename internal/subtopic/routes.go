package subtopic

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sinaliza/sinaliza-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Use(auth.AdminMiddleware)

		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
