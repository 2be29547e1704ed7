package assessment

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/question"
	"gorm.io/datatypes"
)

// TopicScore é a nota corrente de um usuário em um tópico. A política de
// persistência é OVERWRITE_LATEST: reenvios sobrescrevem a nota da linha
// mais recente, maior ou menor que a anterior.
type TopicScore struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_topic" json:"user_id"`
	TopicID   uuid.UUID `gorm:"type:uuid;not null;index:idx_user_topic" json:"topic_id"`
	Score     float64   `gorm:"not null" json:"score"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TopicQuestion é uma questão pré-autorada de teste. Quando um tópico tem
// pelo menos 20 delas, o teste usa uma seleção aleatória delas em vez de
// sintetizar questões do vocabulário.
type TopicQuestion struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TopicID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"topic_id"`
	Kind          question.Kind  `gorm:"type:varchar(20);not null" json:"kind"`
	Prompt        string         `gorm:"type:text;not null" json:"prompt"`
	MediaURL      string         `json:"media_url,omitempty"`
	Options       datatypes.JSON `gorm:"type:jsonb" json:"options,omitempty"`
	CorrectAnswer string         `gorm:"type:text" json:"correct_answer"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (q TopicQuestion) ToQuestion() question.Question {
	out := question.Question{
		Kind:          q.Kind,
		Prompt:        q.Prompt,
		MediaURL:      q.MediaURL,
		CorrectAnswer: q.CorrectAnswer,
	}

	if len(q.Options) > 0 {
		var options []string
		if err := json.Unmarshal(q.Options, &options); err == nil {
			out.Options = options
		}
	}

	if q.Kind == question.TrueFalse {
		answer := q.CorrectAnswer == "true"
		out.Answer = &answer
	}

	return out
}
