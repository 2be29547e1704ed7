package topic

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"github.com/sinaliza/sinaliza-api/internal/config"
)

var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrInvalidID     = errors.New("invalid id format")
)

type TopicService interface {
	Create(ctx context.Context, dto CreateTopicDTO) (*TopicResponse, error)
	List(ctx context.Context) ([]TopicResponse, error)
	GetByID(ctx context.Context, id string) (*TopicResponse, error)
	Update(ctx context.Context, id string, dto UpdateTopicDTO) (*TopicResponse, error)
	Delete(ctx context.Context, id string) error

	// NextAfter devolve o tópico imediatamente posterior ao atual na ordem
	// canônica do catálogo, ou nil quando o atual é o último (ou não existe).
	NextAfter(ctx context.Context, currentID string) (*TopicResponse, error)
}

type topicService struct {
	repo  TopicRepository
	cache cache.Invalidator
}

func NewService(repo TopicRepository, c cache.Invalidator) TopicService {
	return &topicService{repo: repo, cache: c}
}

func (s *topicService) Create(ctx context.Context, dto CreateTopicDTO) (*TopicResponse, error) {
	log := config.WithContext(ctx)

	t := Topic{
		ID:          uuid.New(),
		Name:        dto.Name,
		Description: dto.Description,
		IsFree:      dto.IsFree,
		SortOrder:   dto.SortOrder,
		Status:      PUBLISHED,
	}

	if err := s.repo.Create(&t); err != nil {
		log.WithError(err).Error("Failed to create topic")
		return nil, err
	}

	s.cache.Delete(ctx, cache.CatalogPathKey)
	return s.toResponse(&t), nil
}

func (s *topicService) List(ctx context.Context) ([]TopicResponse, error) {
	topics, err := s.repo.FindAllOrdered()
	if err != nil {
		return nil, err
	}

	responses := make([]TopicResponse, 0, len(topics))
	for _, t := range topics {
		responses = append(responses, *s.toResponse(&t))
	}
	return responses, nil
}

func (s *topicService) GetByID(ctx context.Context, id string) (*TopicResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	t, err := s.repo.FindByID(parsed)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}
	return s.toResponse(t), nil
}

func (s *topicService) Update(ctx context.Context, id string, dto UpdateTopicDTO) (*TopicResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	t, err := s.repo.FindByID(parsed)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}

	if dto.Name != nil {
		t.Name = *dto.Name
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.IsFree != nil {
		t.IsFree = *dto.IsFree
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, errors.New("invalid topic status")
		}
		t.Status = *dto.Status
	}
	if dto.SortOrder != nil {
		t.SortOrder = *dto.SortOrder
	}

	if err := s.repo.Update(t); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, cache.CatalogPathKey)
	return s.toResponse(t), nil
}

func (s *topicService) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	t, err := s.repo.FindByID(parsed)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTopicNotFound
	}

	if err := s.repo.Delete(parsed); err != nil {
		return err
	}
	s.cache.Delete(ctx, cache.CatalogPathKey)
	return nil
}

func (s *topicService) NextAfter(ctx context.Context, currentID string) (*TopicResponse, error) {
	parsed, err := uuid.Parse(currentID)
	if err != nil {
		return nil, ErrInvalidID
	}

	topics, err := s.repo.FindAllOrdered()
	if err != nil {
		return nil, err
	}

	for i := range topics {
		if topics[i].ID == parsed {
			if i+1 < len(topics) {
				return s.toResponse(&topics[i+1]), nil
			}
			return nil, nil
		}
	}

	// Tópico atual fora do catálogo: não há próximo.
	return nil, nil
}

func (s *topicService) toResponse(t *Topic) *TopicResponse {
	return &TopicResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsFree:      t.IsFree,
		Status:      t.Status,
		SortOrder:   t.SortOrder,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
