package aipractice

import (
	"context"

	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/vocab"
)

type AIPracticeContainer struct {
	Handler *Handler
}

func NewAIPracticeContainer(subTopicRepo subtopic.SubTopicRepository, signRepo vocab.SignRepository) *AIPracticeContainer {
	ctx := context.Background()

	// Sem credenciais do Gemini o serviço sobe mesmo assim e responde 503
	// nessa rota.
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		config.Logger().WithError(err).Warn("Provedor Gemini indisponível, prática extra desabilitada")
		provider = nil
	}

	service := NewService(provider, subTopicRepo, signRepo)
	handler := NewHandler(service)

	return &AIPracticeContainer{
		Handler: handler,
	}
}
