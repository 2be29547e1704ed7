package topic

import (
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"gorm.io/gorm"
)

type TopicContainer struct {
	Repo    TopicRepository
	Service TopicService
	Handler *Handler
}

func NewTopicContainer(db *gorm.DB, c *cache.Cache) *TopicContainer {
	repo := NewRepository(db)
	service := NewService(repo, c)
	handler := NewHandler(service)

	return &TopicContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
