package learning

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/access"
	"github.com/sinaliza/sinaliza-api/internal/assessment"
	"github.com/sinaliza/sinaliza-api/internal/auth"
	"github.com/sinaliza/sinaliza-api/internal/billing"
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/question"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/timeline"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"github.com/sinaliza/sinaliza-api/internal/vocab"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidID       = errors.New("invalid id format")
	ErrInvalidRange    = errors.New("invalid practice range")
	ErrTopicNotFound   = topic.ErrTopicNotFound
	ErrLessonNotFound  = subtopic.ErrSubTopicNotFound
	ErrEmptyVocabulary = errors.New("lesson has no vocabulary")
)

// testPoolLimit limita a amostra de sinais do tópico que alimenta a síntese
// do teste.
const testPoolLimit = question.MaxTestQuestions

// Timeline é a resposta de estudo de uma lição: os passos intercalados e os
// sinais na ordem canônica que os índices dos passos referenciam.
type Timeline struct {
	SubTopicID uuid.UUID       `json:"sub_topic_id"`
	Steps      []timeline.Step `json:"steps"`
	Items      []vocab.Sign    `json:"items"`
}

type LearningService interface {
	// Timeline monta a linha do tempo de flashcards e práticas de uma lição.
	Timeline(ctx context.Context, subTopicID string) (*Timeline, error)

	// Practice sintetiza questões de múltipla escolha para o intervalo
	// [start, end) da lição, com distratores sorteados da lição inteira.
	Practice(ctx context.Context, subTopicID string, start, end int) ([]question.Question, error)

	// Test monta o teste do tópico: usa questões pré-autoradas quando
	// existem pelo menos 20, senão sintetiza a partir do vocabulário.
	Test(ctx context.Context, topicID string) ([]question.Question, error)

	SubmitTest(ctx context.Context, attempt assessment.TestAttempt) (*assessment.SubmissionResult, error)

	// Path devolve a trilha de aprendizado completa com cada tópico marcado
	// como acessível ou bloqueado conforme o nível do chamador.
	Path(ctx context.Context) (*access.Plan, error)

	// NextTopic devolve o tópico seguinte ao atual na ordem do catálogo, ou
	// nil quando o atual é o último.
	NextTopic(ctx context.Context, currentTopicID string) (*topic.TopicResponse, error)

	// FirstSubtopicOf devolve a primeira lição de um tópico.
	FirstSubtopicOf(ctx context.Context, topicID string) (*subtopic.SubTopic, error)
}

type learningService struct {
	topicService    topic.TopicService
	subTopicService subtopic.SubTopicService
	signRepo        vocab.SignRepository
	assessment      assessment.AssessmentService
	billing         billing.BillingService
	topicRepo       topic.TopicRepository
	subTopicRepo    subtopic.SubTopicRepository
	preauthored     assessment.AssessmentRepository
	generator       *question.Generator
	cache           *cache.Cache
}

func NewService(
	topicService topic.TopicService,
	subTopicService subtopic.SubTopicService,
	signRepo vocab.SignRepository,
	assessmentService assessment.AssessmentService,
	billingService billing.BillingService,
	topicRepo topic.TopicRepository,
	subTopicRepo subtopic.SubTopicRepository,
	preauthored assessment.AssessmentRepository,
	generator *question.Generator,
	c *cache.Cache,
) LearningService {
	return &learningService{
		topicService:    topicService,
		subTopicService: subTopicService,
		signRepo:        signRepo,
		assessment:      assessmentService,
		billing:         billingService,
		topicRepo:       topicRepo,
		subTopicRepo:    subTopicRepo,
		preauthored:     preauthored,
		generator:       generator,
		cache:           c,
	}
}

func (s *learningService) Timeline(ctx context.Context, subTopicID string) (*Timeline, error) {
	id, err := uuid.Parse(subTopicID)
	if err != nil {
		return nil, ErrInvalidID
	}

	st, err := s.subTopicRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrLessonNotFound
	}

	signs, err := s.signRepo.ListBySubTopic(id)
	if err != nil {
		return nil, err
	}

	return &Timeline{
		SubTopicID: id,
		Steps:      timeline.Segment(len(signs)),
		Items:      signs,
	}, nil
}

func (s *learningService) Practice(ctx context.Context, subTopicID string, start, end int) ([]question.Question, error) {
	id, err := uuid.Parse(subTopicID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if start < 0 || end < start {
		return nil, ErrInvalidRange
	}

	signs, err := s.signRepo.ListBySubTopic(id)
	if err != nil {
		return nil, err
	}
	if len(signs) == 0 {
		return nil, ErrEmptyVocabulary
	}

	return s.generator.BuildPractice(signs, start, end), nil
}

func (s *learningService) Test(ctx context.Context, topicID string) ([]question.Question, error) {
	log := config.WithContext(ctx)

	id, err := uuid.Parse(topicID)
	if err != nil {
		return nil, ErrInvalidID
	}

	t, err := s.topicRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}

	authored, err := s.preauthored.ListPreauthoredByTopic(id)
	if err != nil {
		return nil, err
	}
	if len(authored) >= question.MaxTestQuestions {
		pool := make([]question.Question, 0, len(authored))
		for _, q := range authored {
			pool = append(pool, q.ToQuestion())
		}
		log.WithFields(logrus.Fields{
			"topic_id": id.String(),
			"authored": len(authored),
		}).Info("Teste montado com questões pré-autoradas")
		return s.generator.Pick(pool, question.MaxTestQuestions), nil
	}

	signs, err := s.signRepo.RandomPoolByTopic(id, testPoolLimit)
	if err != nil {
		return nil, err
	}
	if len(signs) == 0 {
		return nil, ErrEmptyVocabulary
	}

	return s.generator.BuildTest(signs), nil
}

func (s *learningService) SubmitTest(ctx context.Context, attempt assessment.TestAttempt) (*assessment.SubmissionResult, error) {
	return s.assessment.Submit(ctx, attempt)
}

func (s *learningService) Path(ctx context.Context) (*access.Plan, error) {
	log := config.WithContext(ctx)

	tier, err := s.resolveTier(ctx)
	if err != nil {
		return nil, err
	}

	topics, subsByTopic, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	plan := access.BuildPath(tier, topics, subsByTopic)
	log.WithFields(logrus.Fields{
		"tier":   tier,
		"topics": len(topics),
	}).Debug("Trilha de aprendizado montada")
	return &plan, nil
}

func (s *learningService) NextTopic(ctx context.Context, currentTopicID string) (*topic.TopicResponse, error) {
	return s.topicService.NextAfter(ctx, currentTopicID)
}

func (s *learningService) FirstSubtopicOf(ctx context.Context, topicID string) (*subtopic.SubTopic, error) {
	return s.subTopicService.FirstOf(ctx, topicID)
}

// resolveTier decide o nível de acesso do chamador: visitante quando não há
// claims no contexto, assinante quando a transação paga mais recente cobre o
// momento atual, gratuito caso contrário.
func (s *learningService) resolveTier(ctx context.Context) (access.Tier, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return access.TierGuest, nil
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return access.TierGuest, nil
	}

	tx, err := s.billing.MostRecentTransaction(ctx, userID)
	if err != nil {
		return "", err
	}

	var window *access.Window
	if tx != nil && tx.Status == billing.TransactionPaid {
		window = &access.Window{Start: tx.StartDate, End: tx.EndDate}
	}
	return access.ResolveTier(true, window, time.Now()), nil
}

type catalogSnapshot struct {
	Topics      []topic.Topic                     `json:"topics"`
	SubsByTopic map[uuid.UUID][]subtopic.SubTopic `json:"subs_by_topic"`
}

// catalog carrega tópicos e lições na ordem canônica, com um cache curto em
// Redis na frente do banco.
func (s *learningService) catalog(ctx context.Context) ([]topic.Topic, map[uuid.UUID][]subtopic.SubTopic, error) {
	var snap catalogSnapshot
	if err := s.cache.GetJSON(ctx, cache.CatalogPathKey, &snap); err == nil {
		return snap.Topics, snap.SubsByTopic, nil
	}

	topics, err := s.topicRepo.FindAllOrdered()
	if err != nil {
		return nil, nil, err
	}

	subsByTopic := make(map[uuid.UUID][]subtopic.SubTopic, len(topics))
	for _, t := range topics {
		subs, err := s.subTopicRepo.FindByTopicID(t.ID)
		if err != nil {
			return nil, nil, err
		}
		subsByTopic[t.ID] = subs
	}

	s.cache.SetJSON(ctx, cache.CatalogPathKey, catalogSnapshot{Topics: topics, SubsByTopic: subsByTopic}, cache.DefaultTTL)
	return topics, subsByTopic, nil
}
