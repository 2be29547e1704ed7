package learning

import (
	"github.com/sinaliza/sinaliza-api/internal/assessment"
	"github.com/sinaliza/sinaliza-api/internal/billing"
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"github.com/sinaliza/sinaliza-api/internal/question"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"github.com/sinaliza/sinaliza-api/internal/vocab"
)

type LearningContainer struct {
	Service LearningService
	Handler *Handler
}

func NewLearningContainer(
	topicService topic.TopicService,
	subTopicService subtopic.SubTopicService,
	signRepo vocab.SignRepository,
	assessmentService assessment.AssessmentService,
	billingService billing.BillingService,
	topicRepo topic.TopicRepository,
	subTopicRepo subtopic.SubTopicRepository,
	assessmentRepo assessment.AssessmentRepository,
	c *cache.Cache,
) *LearningContainer {
	service := NewService(
		topicService,
		subTopicService,
		signRepo,
		assessmentService,
		billingService,
		topicRepo,
		subTopicRepo,
		assessmentRepo,
		question.NewGenerator(nil),
		c,
	)
	handler := NewHandler(service)

	return &LearningContainer{
		Service: service,
		Handler: handler,
	}
}
