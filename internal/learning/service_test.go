package learning_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/access"
	"github.com/sinaliza/sinaliza-api/internal/assessment"
	"github.com/sinaliza/sinaliza-api/internal/auth"
	"github.com/sinaliza/sinaliza-api/internal/billing"
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"github.com/sinaliza/sinaliza-api/internal/learning"
	"github.com/sinaliza/sinaliza-api/internal/question"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"github.com/sinaliza/sinaliza-api/internal/vocab"
)

type fakeTopicRepo struct {
	ordered []topic.Topic
}

func (f *fakeTopicRepo) Create(t *topic.Topic) error { return nil }
func (f *fakeTopicRepo) FindByID(id uuid.UUID) (*topic.Topic, error) {
	for i := range f.ordered {
		if f.ordered[i].ID == id {
			return &f.ordered[i], nil
		}
	}
	return nil, nil
}
func (f *fakeTopicRepo) FindAllOrdered() ([]topic.Topic, error) { return f.ordered, nil }
func (f *fakeTopicRepo) Update(t *topic.Topic) error            { return nil }
func (f *fakeTopicRepo) Delete(id uuid.UUID) error              { return nil }

type fakeSubTopicRepo struct {
	byTopic map[uuid.UUID][]subtopic.SubTopic
	byID    map[uuid.UUID]*subtopic.SubTopic
}

func (f *fakeSubTopicRepo) Create(st *subtopic.SubTopic) error { return nil }
func (f *fakeSubTopicRepo) FindByID(id uuid.UUID) (*subtopic.SubTopic, error) {
	return f.byID[id], nil
}
func (f *fakeSubTopicRepo) FindByTopicID(topicID uuid.UUID) ([]subtopic.SubTopic, error) {
	return f.byTopic[topicID], nil
}
func (f *fakeSubTopicRepo) FirstByTopicID(topicID uuid.UUID) (*subtopic.SubTopic, error) {
	subs := f.byTopic[topicID]
	if len(subs) == 0 {
		return nil, nil
	}
	return &subs[0], nil
}
func (f *fakeSubTopicRepo) Update(st *subtopic.SubTopic) error { return nil }
func (f *fakeSubTopicRepo) Delete(id uuid.UUID) error          { return nil }

type fakeSignRepo struct {
	bySubTopic map[uuid.UUID][]vocab.Sign
	topicPool  []vocab.Sign
	lastLimit  int
}

func (f *fakeSignRepo) Create(s *vocab.Sign) error            { return nil }
func (f *fakeSignRepo) CreateBatch(signs []*vocab.Sign) error { return nil }
func (f *fakeSignRepo) FindByID(id uuid.UUID) (*vocab.Sign, error) {
	return nil, nil
}
func (f *fakeSignRepo) ListBySubTopic(subTopicID uuid.UUID) ([]vocab.Sign, error) {
	return f.bySubTopic[subTopicID], nil
}
func (f *fakeSignRepo) RandomPoolByTopic(topicID uuid.UUID, limit int) ([]vocab.Sign, error) {
	f.lastLimit = limit
	if len(f.topicPool) > limit {
		return f.topicPool[:limit], nil
	}
	return f.topicPool, nil
}
func (f *fakeSignRepo) Update(s *vocab.Sign) error { return nil }
func (f *fakeSignRepo) Delete(id uuid.UUID) error  { return nil }

type fakeAssessmentRepo struct {
	preauthored []assessment.TopicQuestion
}

func (f *fakeAssessmentRepo) LatestScore(userID, topicID uuid.UUID) (*assessment.TopicScore, error) {
	return nil, nil
}
func (f *fakeAssessmentRepo) CreateScore(s *assessment.TopicScore) error { return nil }
func (f *fakeAssessmentRepo) UpdateScore(s *assessment.TopicScore) error { return nil }
func (f *fakeAssessmentRepo) ListPreauthoredByTopic(topicID uuid.UUID) ([]assessment.TopicQuestion, error) {
	return f.preauthored, nil
}
func (f *fakeAssessmentRepo) CreatePreauthored(q *assessment.TopicQuestion) error {
	f.preauthored = append(f.preauthored, *q)
	return nil
}

type fakeBillingService struct {
	tx *billing.Transaction
}

func (f *fakeBillingService) ListPlans(ctx context.Context) ([]billing.Plan, error) {
	return nil, nil
}
func (f *fakeBillingService) CreatePlan(ctx context.Context, dto billing.CreatePlanDTO) (*billing.Plan, error) {
	return nil, nil
}
func (f *fakeBillingService) GrantSubscription(ctx context.Context, dto billing.GrantSubscriptionDTO) (*billing.Transaction, error) {
	return nil, nil
}
func (f *fakeBillingService) MostRecentTransaction(ctx context.Context, userID uuid.UUID) (*billing.Transaction, error) {
	return f.tx, nil
}

type fakeAssessmentService struct{}

func (f *fakeAssessmentService) Submit(ctx context.Context, attempt assessment.TestAttempt) (*assessment.SubmissionResult, error) {
	return &assessment.SubmissionResult{Score: attempt.Score}, nil
}

func makeSigns(n int, subTopicID uuid.UUID) []vocab.Sign {
	signs := make([]vocab.Sign, n)
	for i := range signs {
		signs[i] = vocab.Sign{
			ID:         uuid.New(),
			Word:       "sinal-" + string(rune('a'+i%26)) + string(rune('0'+i/26)),
			VideoURL:   "https://videos.example.com/sinal.mp4",
			SubTopicID: subTopicID,
			Position:   i,
		}
	}
	return signs
}

type fixture struct {
	service      learning.LearningService
	topicRepo    *fakeTopicRepo
	subTopicRepo *fakeSubTopicRepo
	signRepo     *fakeSignRepo
	assessRepo   *fakeAssessmentRepo
	billing      *fakeBillingService
	topicIDs     []uuid.UUID
	subTopicID   uuid.UUID
}

func newFixture(t *testing.T, seed int64) *fixture {
	t.Helper()

	topics := []topic.Topic{
		{ID: uuid.New(), Name: "Alfabeto", SortOrder: 1},
		{ID: uuid.New(), Name: "Cumprimentos", SortOrder: 2},
		{ID: uuid.New(), Name: "Família", SortOrder: 3},
	}
	topicIDs := []uuid.UUID{topics[0].ID, topics[1].ID, topics[2].ID}

	subTopicID := uuid.New()
	subs := map[uuid.UUID][]subtopic.SubTopic{
		topics[0].ID: {
			{ID: subTopicID, Name: "Vogais", TopicID: topics[0].ID},
			{ID: uuid.New(), Name: "Consoantes", TopicID: topics[0].ID},
		},
		topics[1].ID: {{ID: uuid.New(), Name: "Saudações", TopicID: topics[1].ID}},
	}
	byID := map[uuid.UUID]*subtopic.SubTopic{}
	for tid := range subs {
		for i := range subs[tid] {
			byID[subs[tid][i].ID] = &subs[tid][i]
		}
	}

	topicRepo := &fakeTopicRepo{ordered: topics}
	subTopicRepo := &fakeSubTopicRepo{byTopic: subs, byID: byID}
	signRepo := &fakeSignRepo{
		bySubTopic: map[uuid.UUID][]vocab.Sign{subTopicID: makeSigns(11, subTopicID)},
		topicPool:  makeSigns(25, subTopicID),
	}
	assessRepo := &fakeAssessmentRepo{}
	billingService := &fakeBillingService{}

	service := learning.NewService(
		topic.NewService(topicRepo, cache.New()),
		subtopic.NewService(subTopicRepo, topicRepo, cache.New()),
		signRepo,
		&fakeAssessmentService{},
		billingService,
		topicRepo,
		subTopicRepo,
		assessRepo,
		question.NewGenerator(rand.New(rand.NewSource(seed))),
		cache.New(),
	)

	return &fixture{
		service:      service,
		topicRepo:    topicRepo,
		subTopicRepo: subTopicRepo,
		signRepo:     signRepo,
		assessRepo:   assessRepo,
		billing:      billingService,
		topicIDs:     topicIDs,
		subTopicID:   subTopicID,
	}
}

func TestTimeline(t *testing.T) {
	f := newFixture(t, 1)

	tl, err := f.service.Timeline(context.Background(), f.subTopicID.String())
	if err != nil {
		t.Fatalf("Timeline falhou: %v", err)
	}

	if len(tl.Items) != 11 {
		t.Fatalf("Esperava 11 sinais, recebeu %d", len(tl.Items))
	}

	// 11 cartões: 4 grupos, 11 flashcards + 4 práticas.
	if len(tl.Steps) != 15 {
		t.Errorf("Esperava 15 passos, recebeu %d", len(tl.Steps))
	}

	var covered int
	for _, step := range tl.Steps {
		if step.Kind == "PRACTICE" {
			covered += step.End - step.Start
		}
	}
	if covered != 11 {
		t.Errorf("As práticas deveriam cobrir os 11 cartões, cobriram %d", covered)
	}
}

func TestTimelineUnknownLesson(t *testing.T) {
	f := newFixture(t, 1)

	_, err := f.service.Timeline(context.Background(), uuid.NewString())
	if !errors.Is(err, learning.ErrLessonNotFound) {
		t.Errorf("Esperava ErrLessonNotFound, recebeu %v", err)
	}
}

func TestPractice(t *testing.T) {
	f := newFixture(t, 7)

	questions, err := f.service.Practice(context.Background(), f.subTopicID.String(), 0, 3)
	if err != nil {
		t.Fatalf("Practice falhou: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("Esperava 3 questões para o intervalo [0,3), recebeu %d", len(questions))
	}
	for _, q := range questions {
		if q.Kind != question.MultipleChoice {
			t.Errorf("Prática só sintetiza múltipla escolha, recebeu %s", q.Kind)
		}
	}

	if _, err := f.service.Practice(context.Background(), f.subTopicID.String(), 3, 1); !errors.Is(err, learning.ErrInvalidRange) {
		t.Errorf("Intervalo invertido deveria devolver ErrInvalidRange, recebeu %v", err)
	}
}

func TestTestSynthesizedQuotas(t *testing.T) {
	f := newFixture(t, 42)

	questions, err := f.service.Test(context.Background(), f.topicIDs[0].String())
	if err != nil {
		t.Fatalf("Test falhou: %v", err)
	}

	if len(questions) != question.MaxTestQuestions {
		t.Fatalf("Esperava %d questões, recebeu %d", question.MaxTestQuestions, len(questions))
	}

	counts := map[question.Kind]int{}
	for _, q := range questions {
		counts[q.Kind]++
	}
	if counts[question.MultipleChoice] != 7 || counts[question.TrueFalse] != 7 || counts[question.Essay] != 6 {
		t.Errorf("Cotas esperadas 7/7/6, recebeu %d/%d/%d",
			counts[question.MultipleChoice], counts[question.TrueFalse], counts[question.Essay])
	}

	if f.signRepo.lastLimit != question.MaxTestQuestions {
		t.Errorf("A amostra do tópico deveria ser limitada a %d candidatos, pediu %d",
			question.MaxTestQuestions, f.signRepo.lastLimit)
	}
}

func TestTestPrefersPreauthored(t *testing.T) {
	f := newFixture(t, 3)

	options, _ := json.Marshal([]string{"Casa", "Escola", "Rua", "Praça"})
	for i := 0; i < question.MaxTestQuestions+5; i++ {
		f.assessRepo.preauthored = append(f.assessRepo.preauthored, assessment.TopicQuestion{
			ID:            uuid.New(),
			TopicID:       f.topicIDs[0],
			Kind:          question.MultipleChoice,
			Prompt:        "Qual palavra corresponde ao sinal mostrado?",
			Options:       options,
			CorrectAnswer: "Casa",
		})
	}

	questions, err := f.service.Test(context.Background(), f.topicIDs[0].String())
	if err != nil {
		t.Fatalf("Test falhou: %v", err)
	}

	if len(questions) != question.MaxTestQuestions {
		t.Fatalf("Esperava %d questões pré-autoradas, recebeu %d", question.MaxTestQuestions, len(questions))
	}
	for _, q := range questions {
		if q.CorrectAnswer != "Casa" {
			t.Fatal("O teste deveria vir inteiro do banco de questões pré-autoradas")
		}
		if len(q.Options) != 4 {
			t.Fatalf("Opções da questão pré-autorada deveriam ser 4, recebeu %d", len(q.Options))
		}
	}
}

func TestPathTiers(t *testing.T) {
	f := newFixture(t, 1)

	t.Run("Guest", func(t *testing.T) {
		plan, err := f.service.Path(context.Background())
		if err != nil {
			t.Fatalf("Path falhou: %v", err)
		}
		if plan.Tier != access.TierGuest {
			t.Errorf("Sem token, tier deveria ser GUEST, recebeu %s", plan.Tier)
		}
		assertAccessible(t, plan, 1, access.LockReasonSignIn)
	})

	t.Run("Free", func(t *testing.T) {
		ctx := auth.ContextWithClaims(context.Background(), &auth.UserClaims{
			UserID: uuid.NewString(),
			Role:   "STUDENT",
		})
		plan, err := f.service.Path(ctx)
		if err != nil {
			t.Fatalf("Path falhou: %v", err)
		}
		if plan.Tier != access.TierFree {
			t.Errorf("Autenticado sem assinatura deveria ser FREE, recebeu %s", plan.Tier)
		}
		assertAccessible(t, plan, 2, access.LockReasonUpgrade)
	})

	t.Run("Subscriber", func(t *testing.T) {
		now := time.Now()
		f.billing.tx = &billing.Transaction{
			Status:    billing.TransactionPaid,
			StartDate: now.Add(-24 * time.Hour),
			EndDate:   now.Add(24 * time.Hour),
		}
		defer func() { f.billing.tx = nil }()

		ctx := auth.ContextWithClaims(context.Background(), &auth.UserClaims{
			UserID: uuid.NewString(),
			Role:   "STUDENT",
		})
		plan, err := f.service.Path(ctx)
		if err != nil {
			t.Fatalf("Path falhou: %v", err)
		}
		if plan.Tier != access.TierSubscriber {
			t.Errorf("Assinatura vigente deveria dar SUBSCRIBER, recebeu %s", plan.Tier)
		}
		assertAccessible(t, plan, 3, "")
	})
}

func assertAccessible(t *testing.T, plan *access.Plan, want int, lockReason string) {
	t.Helper()

	var accessible int
	for _, entry := range plan.Entries {
		if entry.Accessible {
			accessible++
			continue
		}
		if entry.LockReason != lockReason {
			t.Errorf("Motivo de bloqueio esperado %q, recebeu %q", lockReason, entry.LockReason)
		}
	}
	if accessible != want {
		t.Errorf("Esperava %d tópicos acessíveis, recebeu %d", want, accessible)
	}
}

func TestNextTopic(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	next, err := f.service.NextTopic(ctx, f.topicIDs[0].String())
	if err != nil {
		t.Fatalf("NextTopic falhou: %v", err)
	}
	if next == nil || next.Name != "Cumprimentos" {
		t.Errorf("Depois de Alfabeto deveria vir Cumprimentos, recebeu %+v", next)
	}

	last, err := f.service.NextTopic(ctx, f.topicIDs[2].String())
	if err != nil {
		t.Fatalf("NextTopic no último tópico falhou: %v", err)
	}
	if last != nil {
		t.Errorf("O último tópico não tem próximo, recebeu %+v", last)
	}
}

func TestFirstSubtopicOf(t *testing.T) {
	f := newFixture(t, 1)

	st, err := f.service.FirstSubtopicOf(context.Background(), f.topicIDs[0].String())
	if err != nil {
		t.Fatalf("FirstSubtopicOf falhou: %v", err)
	}
	if st == nil || st.Name != "Vogais" {
		t.Errorf("A primeira lição de Alfabeto deveria ser Vogais, recebeu %+v", st)
	}
}
