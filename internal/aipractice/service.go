package aipractice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/vocab"
)

var (
	ErrInvalidID        = errors.New("invalid id format")
	ErrLessonNotFound   = subtopic.ErrSubTopicNotFound
	ErrEmptyVocabulary  = errors.New("lesson has no vocabulary")
	ErrProviderDisabled = errors.New("ai provider not configured")
)

type Service interface {
	// GeneratePractice pede ao modelo questões extras sobre o vocabulário
	// da lição. O resultado não é persistido nem entra na nota do tópico.
	GeneratePractice(ctx context.Context, req PracticeRequest) ([]Question, error)
}

type service struct {
	provider     Provider
	subTopicRepo subtopic.SubTopicRepository
	signRepo     vocab.SignRepository
}

func NewService(provider Provider, subTopicRepo subtopic.SubTopicRepository, signRepo vocab.SignRepository) Service {
	return &service{provider: provider, subTopicRepo: subTopicRepo, signRepo: signRepo}
}

func (s *service) GeneratePractice(ctx context.Context, req PracticeRequest) ([]Question, error) {
	if s.provider == nil {
		return nil, ErrProviderDisabled
	}

	id, err := uuid.Parse(req.SubTopicID)
	if err != nil {
		return nil, ErrInvalidID
	}

	st, err := s.subTopicRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrLessonNotFound
	}

	signs, err := s.signRepo.ListBySubTopic(id)
	if err != nil {
		return nil, err
	}
	if len(signs) == 0 {
		return nil, ErrEmptyVocabulary
	}

	words := make([]string, 0, len(signs))
	for _, sign := range signs {
		words = append(words, sign.Word)
	}

	return s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(words, req.Dificuldade, req.Quantidade))
}
