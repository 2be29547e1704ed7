package learning

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sinaliza/sinaliza-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	// A trilha aceita visitantes: sem token o chamador vê o catálogo com os
	// tópicos bloqueados marcados.
	r.With(auth.OptionalAuthMiddleware).Get("/path", h.GetPath)

	r.Get("/subtopics/{subTopicId}/timeline", h.GetTimeline)
	r.Get("/subtopics/{subTopicId}/practice", h.GetPractice)
	r.Get("/topics/{topicId}/test", h.GetTest)
	r.Get("/topics/{topicId}/next", h.GetNextTopic)
	r.Get("/topics/{topicId}/first-subtopic", h.GetFirstSubtopic)

	r.With(auth.AuthMiddleware).Post("/topics/test/submit", h.SubmitTest)

	return r
}
