package subtopic

import (
	"time"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"gorm.io/gorm"
)

type SubTopic struct {
	ID        uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string            `gorm:"not null" json:"name"`
	SortOrder int               `gorm:"not null;default:0;index" json:"sort_order"`
	TopicID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"topic_id"`
	Topic     topic.Topic       `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"-"`
	Status    topic.TopicStatus `gorm:"type:varchar(20);default:'PUBLISHED'" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`
}
