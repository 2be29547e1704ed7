package vocab

import (
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"gorm.io/gorm"
)

type SignContainer struct {
	Repo    SignRepository
	Service SignService
	Handler *Handler
}

func NewSignContainer(db *gorm.DB, subTopicRepo subtopic.SubTopicRepository) *SignContainer {
	repo := NewRepository(db)
	service := NewService(repo, subTopicRepo)
	handler := NewHandler(service)

	return &SignContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
