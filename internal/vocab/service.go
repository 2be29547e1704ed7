package vocab

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
)

var (
	ErrSignNotFound = errors.New("sign not found")
	ErrInvalidID    = errors.New("invalid id format")
)

type CreateSignDTO struct {
	Word       string `json:"word" binding:"required"`
	Meaning    string `json:"meaning"`
	VideoURL   string `json:"video_url"`
	SubTopicID string `json:"sub_topic_id" binding:"required"`
	Position   int    `json:"position"`
}

type SignService interface {
	Create(ctx context.Context, dto CreateSignDTO) (*Sign, error)
	ListBySubTopic(ctx context.Context, subTopicID string) ([]Sign, error)
	Delete(ctx context.Context, id string) error
}

type signService struct {
	repo         SignRepository
	subTopicRepo subtopic.SubTopicRepository
}

func NewService(repo SignRepository, subTopicRepo subtopic.SubTopicRepository) SignService {
	return &signService{repo: repo, subTopicRepo: subTopicRepo}
}

func (s *signService) Create(ctx context.Context, dto CreateSignDTO) (*Sign, error) {
	log := config.WithContext(ctx)

	subTopicID, err := uuid.Parse(dto.SubTopicID)
	if err != nil {
		return nil, ErrInvalidID
	}

	st, err := s.subTopicRepo.FindByID(subTopicID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, subtopic.ErrSubTopicNotFound
	}

	sign := Sign{
		ID:         uuid.New(),
		Word:       dto.Word,
		Meaning:    dto.Meaning,
		VideoURL:   dto.VideoURL,
		SubTopicID: subTopicID,
		Position:   dto.Position,
	}

	if err := s.repo.Create(&sign); err != nil {
		log.WithError(err).Error("Failed to create sign")
		return nil, err
	}

	return &sign, nil
}

func (s *signService) ListBySubTopic(ctx context.Context, subTopicID string) ([]Sign, error) {
	parsed, err := uuid.Parse(subTopicID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.ListBySubTopic(parsed)
}

func (s *signService) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	sign, err := s.repo.FindByID(parsed)
	if err != nil {
		return err
	}
	if sign == nil {
		return ErrSignNotFound
	}

	return s.repo.Delete(parsed)
}
