package subtopic

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/topic"
)

var (
	ErrSubTopicNotFound = errors.New("subtopic not found")
	ErrInvalidID        = errors.New("invalid id format")
)

type CreateSubTopicDTO struct {
	Name      string `json:"name" binding:"required"`
	TopicID   string `json:"topic_id" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

type SubTopicService interface {
	Create(ctx context.Context, dto CreateSubTopicDTO) (*SubTopic, error)
	ListByTopic(ctx context.Context, topicID string) ([]SubTopic, error)
	GetByID(ctx context.Context, id string) (*SubTopic, error)
	Delete(ctx context.Context, id string) error

	// FirstOf devolve sempre a primeira lição do tópico. O nome é proposital:
	// o chamador usa isso apenas ao entrar em um tópico novo, nunca como
	// "próxima em relação à atual".
	FirstOf(ctx context.Context, topicID string) (*SubTopic, error)
}

type subTopicService struct {
	repo      SubTopicRepository
	topicRepo topic.TopicRepository
	cache     cache.Invalidator
}

func NewService(repo SubTopicRepository, topicRepo topic.TopicRepository, c cache.Invalidator) SubTopicService {
	return &subTopicService{repo: repo, topicRepo: topicRepo, cache: c}
}

func (s *subTopicService) Create(ctx context.Context, dto CreateSubTopicDTO) (*SubTopic, error) {
	log := config.WithContext(ctx)

	topicID, err := uuid.Parse(dto.TopicID)
	if err != nil {
		return nil, ErrInvalidID
	}

	t, err := s.topicRepo.FindByID(topicID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, topic.ErrTopicNotFound
	}

	st := SubTopic{
		ID:        uuid.New(),
		Name:      dto.Name,
		TopicID:   topicID,
		SortOrder: dto.SortOrder,
		Status:    topic.PUBLISHED,
	}

	if err := s.repo.Create(&st); err != nil {
		log.WithError(err).Error("Failed to create subtopic")
		return nil, err
	}

	s.cache.Delete(ctx, cache.CatalogPathKey)
	return &st, nil
}

func (s *subTopicService) ListByTopic(ctx context.Context, topicID string) ([]SubTopic, error) {
	parsed, err := uuid.Parse(topicID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.FindByTopicID(parsed)
}

func (s *subTopicService) GetByID(ctx context.Context, id string) (*SubTopic, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	st, err := s.repo.FindByID(parsed)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrSubTopicNotFound
	}
	return st, nil
}

func (s *subTopicService) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	st, err := s.repo.FindByID(parsed)
	if err != nil {
		return err
	}
	if st == nil {
		return ErrSubTopicNotFound
	}

	if err := s.repo.Delete(parsed); err != nil {
		return err
	}
	s.cache.Delete(ctx, cache.CatalogPathKey)
	return nil
}

func (s *subTopicService) FirstOf(ctx context.Context, topicID string) (*SubTopic, error) {
	parsed, err := uuid.Parse(topicID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.FirstByTopicID(parsed)
}
