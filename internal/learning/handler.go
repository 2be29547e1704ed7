package learning

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sinaliza/sinaliza-api/internal/assessment"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service LearningService
}

func NewHandler(service LearningService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	subTopicID := chi.URLParam(r, "subTopicId")

	tl, err := h.service.Timeline(r.Context(), subTopicID)
	if err != nil {
		writeServiceError(w, config.WithContext(r.Context()), err, "Failed to build timeline")
		return
	}

	config.JSON(w, http.StatusOK, tl)
}

func (h *Handler) GetPractice(w http.ResponseWriter, r *http.Request) {
	subTopicID := chi.URLParam(r, "subTopicId")

	start, err := strconv.Atoi(r.URL.Query().Get("start"))
	if err != nil {
		http.Error(w, "invalid start", http.StatusBadRequest)
		return
	}
	end, err := strconv.Atoi(r.URL.Query().Get("end"))
	if err != nil {
		http.Error(w, "invalid end", http.StatusBadRequest)
		return
	}

	questions, err := h.service.Practice(r.Context(), subTopicID, start, end)
	if err != nil {
		writeServiceError(w, config.WithContext(r.Context()), err, "Failed to build practice questions")
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) GetTest(w http.ResponseWriter, r *http.Request) {
	topicID := chi.URLParam(r, "topicId")

	questions, err := h.service.Test(r.Context(), topicID)
	if err != nil {
		writeServiceError(w, config.WithContext(r.Context()), err, "Failed to build topic test")
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) SubmitTest(w http.ResponseWriter, r *http.Request) {
	var attempt assessment.TestAttempt
	if err := json.NewDecoder(r.Body).Decode(&attempt); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SubmitTest(r.Context(), attempt)
	if err != nil {
		writeServiceError(w, config.WithContext(r.Context()), err, "Failed to submit topic test")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) GetPath(w http.ResponseWriter, r *http.Request) {
	plan, err := h.service.Path(r.Context())
	if err != nil {
		writeServiceError(w, config.WithContext(r.Context()), err, "Failed to build learning path")
		return
	}

	config.JSON(w, http.StatusOK, plan)
}

func (h *Handler) GetNextTopic(w http.ResponseWriter, r *http.Request) {
	topicID := chi.URLParam(r, "topicId")

	next, err := h.service.NextTopic(r.Context(), topicID)
	if err != nil {
		writeServiceError(w, config.WithContext(r.Context()), err, "Failed to resolve next topic")
		return
	}
	if next == nil {
		// Último tópico do catálogo: não há próximo.
		config.JSON(w, http.StatusOK, map[string]any{"next": nil})
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{"next": next})
}

func (h *Handler) GetFirstSubtopic(w http.ResponseWriter, r *http.Request) {
	topicID := chi.URLParam(r, "topicId")

	st, err := h.service.FirstSubtopicOf(r.Context(), topicID)
	if err != nil {
		writeServiceError(w, config.WithContext(r.Context()), err, "Failed to resolve first subtopic")
		return
	}
	if st == nil {
		http.Error(w, "topic has no subtopics", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, st)
}

func writeServiceError(w http.ResponseWriter, log logrus.FieldLogger, err error, msg string) {
	switch {
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidRange),
		errors.Is(err, topic.ErrInvalidID), errors.Is(err, subtopic.ErrInvalidID),
		errors.Is(err, assessment.ErrInvalidScore), errors.Is(err, assessment.ErrInvalidID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrTopicNotFound), errors.Is(err, ErrLessonNotFound),
		errors.Is(err, assessment.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrEmptyVocabulary):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, assessment.ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
