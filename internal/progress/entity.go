package progress

import (
	"time"

	"github.com/google/uuid"
)

// ProgressRecord marca a conclusão de uma lição por um usuário. Há no
// máximo um registro por par (usuário, lição).
type ProgressRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_subtopic" json:"user_id"`
	SubTopicID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_subtopic" json:"sub_topic_id"`
	IsComplete bool      `gorm:"not null;default:true" json:"is_complete"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
