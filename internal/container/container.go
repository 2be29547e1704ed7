package container

import (
	"context"
	"log"
	"os"

	"github.com/sinaliza/sinaliza-api/internal/aipractice"
	"github.com/sinaliza/sinaliza-api/internal/assessment"
	"github.com/sinaliza/sinaliza-api/internal/auth"
	"github.com/sinaliza/sinaliza-api/internal/billing"
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/importer"
	"github.com/sinaliza/sinaliza-api/internal/learning"
	"github.com/sinaliza/sinaliza-api/internal/progress"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"github.com/sinaliza/sinaliza-api/internal/user"
	"github.com/sinaliza/sinaliza-api/internal/vocab"
)

type Container struct {
	UserContainer       *user.UserContainer
	TopicContainer      *topic.TopicContainer
	SubTopicContainer   *subtopic.SubTopicContainer
	SignContainer       *vocab.SignContainer
	ProgressContainer   *progress.ProgressContainer
	BillingContainer    *billing.BillingContainer
	AssessmentContainer *assessment.AssessmentContainer
	LearningContainer   *learning.LearningContainer
	AIPracticeContainer *aipractice.AIPracticeContainer
	ImporterContainer   *importer.ImporterContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	catalogCache := cache.New()

	userContainer := user.NewUserContainer(config.DB)
	topicContainer := topic.NewTopicContainer(config.DB, catalogCache)
	subTopicContainer := subtopic.NewSubTopicContainer(config.DB, topicContainer.Repo, catalogCache)
	signContainer := vocab.NewSignContainer(config.DB, subTopicContainer.Repo)
	progressContainer := progress.NewProgressContainer(config.DB, subTopicContainer.Repo)
	billingContainer := billing.NewBillingContainer(config.DB)

	assessmentContainer := assessment.NewAssessmentContainer(
		config.DB,
		topicContainer.Repo,
		subTopicContainer.Repo,
		userContainer.Repo,
		progressContainer.Repo,
	)

	learningContainer := learning.NewLearningContainer(
		topicContainer.Service,
		subTopicContainer.Service,
		signContainer.Repo,
		assessmentContainer.Service,
		billingContainer.Service,
		topicContainer.Repo,
		subTopicContainer.Repo,
		assessmentContainer.Repo,
		catalogCache,
	)

	aiPracticeContainer := aipractice.NewAIPracticeContainer(subTopicContainer.Repo, signContainer.Repo)
	importerContainer := importer.NewImporterContainer(
		topicContainer.Repo,
		subTopicContainer.Repo,
		signContainer.Repo,
		catalogCache,
	)

	return &Container{
		UserContainer:       userContainer,
		TopicContainer:      topicContainer,
		SubTopicContainer:   subTopicContainer,
		SignContainer:       signContainer,
		ProgressContainer:   progressContainer,
		BillingContainer:    billingContainer,
		AssessmentContainer: assessmentContainer,
		LearningContainer:   learningContainer,
		AIPracticeContainer: aiPracticeContainer,
		ImporterContainer:   importerContainer,
	}
}
