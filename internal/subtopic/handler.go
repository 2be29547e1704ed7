package subtopic

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/topic"
)

type Handler struct {
	service SubTopicService
}

func NewHandler(service SubTopicService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateSubTopicDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Name == "" || dto.TopicID == "" {
		http.Error(w, "name and topic_id required", http.StatusBadRequest)
		return
	}

	st, err := h.service.Create(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid topic_id", http.StatusBadRequest)
		case errors.Is(err, topic.ErrTopicNotFound):
			http.Error(w, "topic not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to create subtopic")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, st)
}

func (h *Handler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topicID := chi.URLParam(r, "topicId")
	subtopics, err := h.service.ListByTopic(r.Context(), topicID)
	if err != nil {
		if errors.Is(err, ErrInvalidID) {
			http.Error(w, "invalid topic id", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to list subtopics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, subtopics)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid id", http.StatusBadRequest)
		case errors.Is(err, ErrSubTopicNotFound):
			http.Error(w, "subtopic not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to delete subtopic")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
