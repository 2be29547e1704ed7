package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/auth"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidID    = errors.New("invalid id format")
)

type ProgressService interface {
	// CompleteSubTopic registra a conclusão do fluxo de flashcards de uma
	// lição pelo usuário autenticado.
	CompleteSubTopic(ctx context.Context, subTopicID string) (*ProgressRecord, error)
	ListMine(ctx context.Context) ([]ProgressRecord, error)
}

type progressService struct {
	repo         ProgressRepository
	subTopicRepo subtopic.SubTopicRepository
}

func NewService(repo ProgressRepository, subTopicRepo subtopic.SubTopicRepository) ProgressService {
	return &progressService{repo: repo, subTopicRepo: subTopicRepo}
}

func (s *progressService) CompleteSubTopic(ctx context.Context, subTopicID string) (*ProgressRecord, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	parsed, err := uuid.Parse(subTopicID)
	if err != nil {
		return nil, ErrInvalidID
	}

	st, err := s.subTopicRepo.FindByID(parsed)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, subtopic.ErrSubTopicNotFound
	}

	rec := &ProgressRecord{
		ID:         uuid.New(),
		UserID:     userID,
		SubTopicID: parsed,
		IsComplete: true,
	}
	if err := s.repo.Upsert(rec); err != nil {
		log.WithError(err).Error("Failed to record subtopic completion")
		return nil, err
	}

	return rec, nil
}

func (s *progressService) ListMine(ctx context.Context) ([]ProgressRecord, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return s.repo.ListByUser(userID)
}
