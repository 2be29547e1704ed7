package billing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sinaliza/sinaliza-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/plans", h.ListPlans)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Use(auth.AdminMiddleware)

		r.Post("/plans", h.CreatePlan)
		r.Post("/transactions", h.GrantSubscription)
	})

	return r
}
