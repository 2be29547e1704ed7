package vocab

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SignRepository interface {
	Create(s *Sign) error
	CreateBatch(signs []*Sign) error
	FindByID(id uuid.UUID) (*Sign, error)

	// ListBySubTopic devolve os sinais na ordem canônica da lição. Essa
	// ordem é a base tanto da linha do tempo quanto da amostragem de
	// distratores.
	ListBySubTopic(subTopicID uuid.UUID) ([]Sign, error)

	// RandomPoolByTopic devolve até limit sinais de todo o tópico, em ordem
	// aleatória do banco.
	RandomPoolByTopic(topicID uuid.UUID, limit int) ([]Sign, error)

	Update(s *Sign) error
	Delete(id uuid.UUID) error
}

type signRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) SignRepository {
	return &signRepository{db: db}
}

func (r *signRepository) Create(s *Sign) error {
	return r.db.Create(s).Error
}

func (r *signRepository) CreateBatch(signs []*Sign) error {
	if len(signs) == 0 {
		return nil
	}
	return r.db.Create(&signs).Error
}

func (r *signRepository) FindByID(id uuid.UUID) (*Sign, error) {
	var s Sign
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *signRepository) ListBySubTopic(subTopicID uuid.UUID) ([]Sign, error) {
	var signs []Sign
	if err := r.db.
		Where("sub_topic_id = ?", subTopicID).
		Order("position ASC").
		Order("created_at ASC").
		Find(&signs).Error; err != nil {
		return nil, err
	}
	return signs, nil
}

func (r *signRepository) RandomPoolByTopic(topicID uuid.UUID, limit int) ([]Sign, error) {
	var signs []Sign
	if err := r.db.
		Joins("JOIN sub_topics ON sub_topics.id = signs.sub_topic_id").
		Where("sub_topics.topic_id = ? AND sub_topics.deleted_at IS NULL", topicID).
		Order("RANDOM()").
		Limit(limit).
		Find(&signs).Error; err != nil {
		return nil, err
	}
	return signs, nil
}

func (r *signRepository) Update(s *Sign) error {
	return r.db.Save(s).Error
}

func (r *signRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Sign{}, "id = ?", id).Error
}
