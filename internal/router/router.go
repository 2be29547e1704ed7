package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sinaliza/sinaliza-api/internal/aipractice"
	"github.com/sinaliza/sinaliza-api/internal/auth"
	"github.com/sinaliza/sinaliza-api/internal/billing"
	"github.com/sinaliza/sinaliza-api/internal/importer"
	"github.com/sinaliza/sinaliza-api/internal/learning"
	"github.com/sinaliza/sinaliza-api/internal/middlewares"
	"github.com/sinaliza/sinaliza-api/internal/progress"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"github.com/sinaliza/sinaliza-api/internal/user"
	"github.com/sinaliza/sinaliza-api/internal/vocab"
)

type RouterConfig struct {
	UserHandler       *user.Handler
	TopicHandler      *topic.Handler
	SubTopicHandler   *subtopic.Handler
	SignHandler       *vocab.Handler
	ProgressHandler   *progress.Handler
	BillingHandler    *billing.Handler
	LearningHandler   *learning.Handler
	AIPracticeHandler *aipractice.Handler
	ImporterHandler   *importer.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	// O catálogo e a trilha são públicos: visitantes navegam com os tópicos
	// bloqueados marcados, e o cliente aplica o bloqueio na interface.
	r.Mount("/learn", learning.Routes(cfg.LearningHandler))
	r.Mount("/topics", topic.Routes(cfg.TopicHandler))
	r.Mount("/subtopics", subtopic.Routes(cfg.SubTopicHandler))
	r.Mount("/signs", vocab.Routes(cfg.SignHandler))
	r.Mount("/billing", billing.Routes(cfg.BillingHandler))

	r.Get("/topics/{topicId}/subtopics", cfg.SubTopicHandler.ListByTopic)
	r.Get("/subtopics/{subTopicId}/signs", cfg.SignHandler.ListBySubTopic)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
		r.Mount("/ai-practice", aipractice.Routes(cfg.AIPracticeHandler))
		r.Mount("/import", importer.Routes(cfg.ImporterHandler))
	})

	return r
}
