package assessment

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/auth"
	"github.com/sirupsen/logrus"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/progress"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"github.com/sinaliza/sinaliza-api/internal/user"
)

const passingScore = 90

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrTopicNotFound = topic.ErrTopicNotFound
	ErrUserNotFound  = user.ErrUserNotFound
	ErrInvalidScore  = errors.New("score must be between 0 and 100")
	ErrInvalidID     = errors.New("invalid id format")
)

type AssessmentService interface {
	// Submit aplica a nota enviada pelo cliente: deriva acertos e
	// aprovação. Quando aprovado, marca todas as lições do tópico como
	// concluídas. A nota persiste com política OVERWRITE_LATEST.
	Submit(ctx context.Context, attempt TestAttempt) (*SubmissionResult, error)
}

type assessmentService struct {
	repo         AssessmentRepository
	topicRepo    topic.TopicRepository
	subTopicRepo subtopic.SubTopicRepository
	userRepo     user.UserRepository
	progressRepo progress.ProgressRepository
}

func NewService(
	repo AssessmentRepository,
	topicRepo topic.TopicRepository,
	subTopicRepo subtopic.SubTopicRepository,
	userRepo user.UserRepository,
	progressRepo progress.ProgressRepository,
) AssessmentService {
	return &assessmentService{
		repo:         repo,
		topicRepo:    topicRepo,
		subTopicRepo: subTopicRepo,
		userRepo:     userRepo,
		progressRepo: progressRepo,
	}
}

func (s *assessmentService) Submit(ctx context.Context, attempt TestAttempt) (*SubmissionResult, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if attempt.Score < 0 || attempt.Score > 100 {
		return nil, ErrInvalidScore
	}

	topicID, err := uuid.Parse(attempt.TopicID)
	if err != nil {
		return nil, ErrInvalidID
	}

	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	t, err := s.topicRepo.FindByID(topicID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}

	total := len(attempt.Answers)
	correct := int(math.Round(float64(attempt.Score) * float64(total) / 100))
	passed := attempt.Score >= passingScore

	result := &SubmissionResult{
		TotalQuestions: total,
		CorrectAnswers: correct,
		Score:          attempt.Score,
		IsPassed:       passed,
	}

	if passed {
		subtopics, err := s.subTopicRepo.FindByTopicID(topicID)
		if err != nil {
			return nil, err
		}

		subTopicIDs := make([]uuid.UUID, 0, len(subtopics))
		for _, st := range subtopics {
			subTopicIDs = append(subTopicIDs, st.ID)
		}

		if err := s.progressRepo.UpsertBatch(userID, subTopicIDs); err != nil {
			log.WithError(err).Error("Falha ao registrar conclusão das lições do tópico")
			return nil, err
		}
		result.TopicCompleted = true
	}

	if err := s.persistScore(userID, topicID, float64(attempt.Score)); err != nil {
		log.WithError(err).Error("Falha ao persistir nota do tópico")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"topic_id": topicID.String(),
		"score":    attempt.Score,
		"passed":   passed,
	}).Info("Teste de tópico avaliado")
	return result, nil
}

// persistScore aplica OVERWRITE_LATEST: sem nota anterior cria uma linha;
// com nota anterior sobrescreve a mais recente, mesmo que a nova nota seja
// menor.
func (s *assessmentService) persistScore(userID, topicID uuid.UUID, score float64) error {
	latest, err := s.repo.LatestScore(userID, topicID)
	if err != nil {
		return err
	}

	if latest == nil {
		return s.repo.CreateScore(&TopicScore{
			ID:      uuid.New(),
			UserID:  userID,
			TopicID: topicID,
			Score:   score,
		})
	}

	latest.Score = score
	return s.repo.UpdateScore(latest)
}
