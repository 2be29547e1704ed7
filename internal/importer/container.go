package importer

import (
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"github.com/sinaliza/sinaliza-api/internal/vocab"
)

type ImporterContainer struct {
	Service ImportService
	Handler *Handler
}

func NewImporterContainer(
	topicRepo topic.TopicRepository,
	subTopicRepo subtopic.SubTopicRepository,
	signRepo vocab.SignRepository,
	c *cache.Cache,
) *ImporterContainer {
	service := NewService(topicRepo, subTopicRepo, signRepo, c)
	handler := NewHandler(service)

	return &ImporterContainer{
		Service: service,
		Handler: handler,
	}
}
