package assessment

import (
	"github.com/sinaliza/sinaliza-api/internal/progress"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"github.com/sinaliza/sinaliza-api/internal/user"
	"gorm.io/gorm"
)

type AssessmentContainer struct {
	Repo    AssessmentRepository
	Service AssessmentService
}

func NewAssessmentContainer(
	db *gorm.DB,
	topicRepo topic.TopicRepository,
	subTopicRepo subtopic.SubTopicRepository,
	userRepo user.UserRepository,
	progressRepo progress.ProgressRepository,
) *AssessmentContainer {
	repo := NewRepository(db)
	service := NewService(repo, topicRepo, subTopicRepo, userRepo, progressRepo)

	return &AssessmentContainer{
		Repo:    repo,
		Service: service,
	}
}
