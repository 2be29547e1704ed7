package progress

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
)

type Handler struct {
	service ProgressService
}

func NewHandler(service ProgressService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CompleteSubTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	subTopicID := chi.URLParam(r, "subTopicId")
	rec, err := h.service.CompleteSubTopic(r.Context(), subTopicID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		case errors.Is(err, subtopic.ErrSubTopicNotFound):
			http.Error(w, "subtopic not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to complete subtopic")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, rec)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	records, err := h.service.ListMine(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to list progress")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, records)
}
