package importer

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sinaliza/sinaliza-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.With(auth.AuthMiddleware, auth.AdminMiddleware).Post("/catalog", h.ImportCatalog)
	return r
}
