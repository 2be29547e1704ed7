package topic

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicRepository interface {
	Create(t *Topic) error
	FindByID(id uuid.UUID) (*Topic, error)
	FindAllOrdered() ([]Topic, error)
	Update(t *Topic) error
	Delete(id uuid.UUID) error
}

type topicRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(t *Topic) error {
	return r.db.Create(t).Error
}

func (r *topicRepository) FindByID(id uuid.UUID) (*Topic, error) {
	var t Topic
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// FindAllOrdered é a ordem canônica do catálogo: ela define tanto a trilha
// de acesso quanto a transição de tópicos.
func (r *topicRepository) FindAllOrdered() ([]Topic, error) {
	var topics []Topic
	if err := r.db.
		Where("status <> ?", ARCHIVED).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepository) Update(t *Topic) error {
	return r.db.Save(t).Error
}

func (r *topicRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Topic{}, "id = ?", id).Error
}
