package assessment

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	// LatestScore devolve a nota mais recente do par (usuário, tópico), ou
	// nil quando ainda não existe.
	LatestScore(userID, topicID uuid.UUID) (*TopicScore, error)
	CreateScore(s *TopicScore) error
	UpdateScore(s *TopicScore) error

	ListPreauthoredByTopic(topicID uuid.UUID) ([]TopicQuestion, error)
	CreatePreauthored(q *TopicQuestion) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) LatestScore(userID, topicID uuid.UUID) (*TopicScore, error) {
	var score TopicScore
	if err := r.db.
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Order("created_at DESC").
		First(&score).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &score, nil
}

func (r *assessmentRepository) CreateScore(s *TopicScore) error {
	return r.db.Create(s).Error
}

func (r *assessmentRepository) UpdateScore(s *TopicScore) error {
	return r.db.Save(s).Error
}

func (r *assessmentRepository) ListPreauthoredByTopic(topicID uuid.UUID) ([]TopicQuestion, error) {
	var questions []TopicQuestion
	if err := r.db.
		Where("topic_id = ?", topicID).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *assessmentRepository) CreatePreauthored(q *TopicQuestion) error {
	return r.db.Create(q).Error
}
