package aipractice

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sinaliza/sinaliza-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GeneratePractice(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req PracticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	questions, err := h.service.GeneratePractice(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid subtopic id", http.StatusBadRequest)
		case errors.Is(err, ErrLessonNotFound):
			http.Error(w, "subtopic not found", http.StatusNotFound)
		case errors.Is(err, ErrEmptyVocabulary):
			http.Error(w, "lesson has no vocabulary", http.StatusUnprocessableEntity)
		case errors.Is(err, ErrProviderDisabled):
			http.Error(w, "ai practice unavailable", http.StatusServiceUnavailable)
		default:
			log.WithError(err).Errorf("Failed to generate practice questions: %v", err)
			http.Error(w, "failed to generate questions", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, questions)
}
