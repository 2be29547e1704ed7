package topic

import (
	"time"

	"github.com/google/uuid"
)

type CreateTopicDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsFree      bool   `json:"is_free"`
	SortOrder   int    `json:"sort_order"`
}

type UpdateTopicDTO struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	IsFree      *bool        `json:"is_free"`
	Status      *TopicStatus `json:"status"`
	SortOrder   *int         `json:"sort_order"`
}

type TopicResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	IsFree      bool        `json:"is_free"`
	Status      TopicStatus `json:"status"`
	SortOrder   int         `json:"sort_order"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
