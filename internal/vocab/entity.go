package vocab

import (
	"time"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
)

// Sign é a unidade atômica de estudo: a palavra em português, o significado
// e o vídeo do sinal em Libras.
type Sign struct {
	ID         uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Word       string            `gorm:"not null" json:"word"`
	Meaning    string            `gorm:"type:text" json:"meaning"`
	VideoURL   string            `json:"video_url,omitempty"`
	SubTopicID uuid.UUID         `gorm:"type:uuid;not null;index" json:"sub_topic_id"`
	SubTopic   subtopic.SubTopic `gorm:"foreignKey:SubTopicID;constraint:OnDelete:CASCADE" json:"-"`
	Position   int               `gorm:"not null;default:0" json:"position"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
