package progress

import (
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"gorm.io/gorm"
)

type ProgressContainer struct {
	Repo    ProgressRepository
	Service ProgressService
	Handler *Handler
}

func NewProgressContainer(db *gorm.DB, subTopicRepo subtopic.SubTopicRepository) *ProgressContainer {
	repo := NewRepository(db)
	service := NewService(repo, subTopicRepo)
	handler := NewHandler(service)

	return &ProgressContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
