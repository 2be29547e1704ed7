package subtopic

import (
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"gorm.io/gorm"
)

type SubTopicContainer struct {
	Repo    SubTopicRepository
	Service SubTopicService
	Handler *Handler
}

func NewSubTopicContainer(db *gorm.DB, topicRepo topic.TopicRepository, c *cache.Cache) *SubTopicContainer {
	repo := NewRepository(db)
	service := NewService(repo, topicRepo, c)
	handler := NewHandler(service)

	return &SubTopicContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
