package vocab

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
)

type Handler struct {
	service SignService
}

func NewHandler(service SignService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateSignDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Word == "" || dto.SubTopicID == "" {
		http.Error(w, "word and sub_topic_id required", http.StatusBadRequest)
		return
	}

	sign, err := h.service.Create(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid sub_topic_id", http.StatusBadRequest)
		case errors.Is(err, subtopic.ErrSubTopicNotFound):
			http.Error(w, "subtopic not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to create sign")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, sign)
}

func (h *Handler) ListBySubTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	subTopicID := chi.URLParam(r, "subTopicId")
	signs, err := h.service.ListBySubTopic(r.Context(), subTopicID)
	if err != nil {
		if errors.Is(err, ErrInvalidID) {
			http.Error(w, "invalid subtopic id", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to list signs")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, signs)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid id", http.StatusBadRequest)
		case errors.Is(err, ErrSignNotFound):
			http.Error(w, "sign not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to delete sign")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
