package subtopic

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubTopicRepository interface {
	Create(st *SubTopic) error
	FindByID(id uuid.UUID) (*SubTopic, error)
	FindByTopicID(topicID uuid.UUID) ([]SubTopic, error)
	FirstByTopicID(topicID uuid.UUID) (*SubTopic, error)
	Update(st *SubTopic) error
	Delete(id uuid.UUID) error
}

type subTopicRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) SubTopicRepository {
	return &subTopicRepository{db: db}
}

func (r *subTopicRepository) Create(st *SubTopic) error {
	return r.db.Create(st).Error
}

func (r *subTopicRepository) FindByID(id uuid.UUID) (*SubTopic, error) {
	var st SubTopic
	if err := r.db.First(&st, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (r *subTopicRepository) FindByTopicID(topicID uuid.UUID) ([]SubTopic, error) {
	var subtopics []SubTopic
	if err := r.db.
		Where("topic_id = ?", topicID).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&subtopics).Error; err != nil {
		return nil, err
	}
	return subtopics, nil
}

func (r *subTopicRepository) FirstByTopicID(topicID uuid.UUID) (*SubTopic, error) {
	var st SubTopic
	if err := r.db.
		Where("topic_id = ?", topicID).
		Order("sort_order ASC").
		Order("created_at ASC").
		First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (r *subTopicRepository) Update(st *SubTopic) error {
	return r.db.Save(st).Error
}

func (r *subTopicRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&SubTopic{}, "id = ?", id).Error
}
