package progress

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	// Upsert registra a conclusão de uma lição. Conflitos em
	// (user_id, sub_topic_id) são ignorados: a primeira conclusão vale.
	Upsert(rec *ProgressRecord) error

	// UpsertBatch registra a conclusão de várias lições de uma vez,
	// usado quando o usuário passa no teste do tópico.
	UpsertBatch(userID uuid.UUID, subTopicIDs []uuid.UUID) error

	ListByUser(userID uuid.UUID) ([]ProgressRecord, error)
	CountByUserAndSubTopics(userID uuid.UUID, subTopicIDs []uuid.UUID) (int64, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Upsert(rec *ProgressRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "sub_topic_id"}},
		DoNothing: true,
	}).Create(rec).Error
}

func (r *progressRepository) UpsertBatch(userID uuid.UUID, subTopicIDs []uuid.UUID) error {
	if len(subTopicIDs) == 0 {
		return nil
	}

	records := make([]*ProgressRecord, 0, len(subTopicIDs))
	for _, id := range subTopicIDs {
		records = append(records, &ProgressRecord{
			ID:         uuid.New(),
			UserID:     userID,
			SubTopicID: id,
			IsComplete: true,
		})
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "sub_topic_id"}},
		DoNothing: true,
	}).Create(&records).Error
}

func (r *progressRepository) ListByUser(userID uuid.UUID) ([]ProgressRecord, error) {
	var records []ProgressRecord
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *progressRepository) CountByUserAndSubTopics(userID uuid.UUID, subTopicIDs []uuid.UUID) (int64, error) {
	if len(subTopicIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := r.db.Model(&ProgressRecord{}).
		Where("user_id = ? AND sub_topic_id IN ? AND is_complete", userID, subTopicIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
