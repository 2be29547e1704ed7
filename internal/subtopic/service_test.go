package subtopic_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
)

type fakeTopicRepo struct {
	topics map[uuid.UUID]*topic.Topic
}

func (f *fakeTopicRepo) Create(t *topic.Topic) error                 { return nil }
func (f *fakeTopicRepo) FindByID(id uuid.UUID) (*topic.Topic, error) { return f.topics[id], nil }
func (f *fakeTopicRepo) FindAllOrdered() ([]topic.Topic, error)      { return nil, nil }
func (f *fakeTopicRepo) Update(t *topic.Topic) error                 { return nil }
func (f *fakeTopicRepo) Delete(id uuid.UUID) error                   { return nil }

type fakeRepo struct {
	byTopic map[uuid.UUID][]subtopic.SubTopic
}

func (f *fakeRepo) Create(st *subtopic.SubTopic) error                { return nil }
func (f *fakeRepo) FindByID(id uuid.UUID) (*subtopic.SubTopic, error) { return nil, nil }
func (f *fakeRepo) FindByTopicID(topicID uuid.UUID) ([]subtopic.SubTopic, error) {
	return f.byTopic[topicID], nil
}
func (f *fakeRepo) FirstByTopicID(topicID uuid.UUID) (*subtopic.SubTopic, error) {
	subs := f.byTopic[topicID]
	if len(subs) == 0 {
		return nil, nil
	}
	return &subs[0], nil
}
func (f *fakeRepo) Update(st *subtopic.SubTopic) error { return nil }
func (f *fakeRepo) Delete(id uuid.UUID) error          { return nil }

func TestFirstOf(t *testing.T) {
	topicID := uuid.New()
	repo := &fakeRepo{byTopic: map[uuid.UUID][]subtopic.SubTopic{
		topicID: {
			{ID: uuid.New(), Name: "Vogais", TopicID: topicID, SortOrder: 1},
			{ID: uuid.New(), Name: "Consoantes", TopicID: topicID, SortOrder: 2},
		},
	}}
	service := subtopic.NewService(repo, &fakeTopicRepo{}, cache.New())
	ctx := context.Background()

	t.Run("AlwaysFirstLesson", func(t *testing.T) {
		st, err := service.FirstOf(ctx, topicID.String())
		if err != nil {
			t.Fatalf("FirstOf falhou: %v", err)
		}
		if st == nil || st.Name != "Vogais" {
			t.Errorf("Esperava a primeira lição Vogais, recebeu %+v", st)
		}
	})

	t.Run("TopicWithoutLessons", func(t *testing.T) {
		st, err := service.FirstOf(ctx, uuid.NewString())
		if err != nil {
			t.Fatalf("FirstOf falhou: %v", err)
		}
		if st != nil {
			t.Errorf("Tópico sem lições deveria devolver nil, recebeu %+v", st)
		}
	})

	t.Run("InvalidID", func(t *testing.T) {
		_, err := service.FirstOf(ctx, "nao-e-uuid")
		if !errors.Is(err, subtopic.ErrInvalidID) {
			t.Errorf("Esperava ErrInvalidID, recebeu %v", err)
		}
	})
}

func TestCreateRequiresExistingTopic(t *testing.T) {
	service := subtopic.NewService(&fakeRepo{}, &fakeTopicRepo{topics: map[uuid.UUID]*topic.Topic{}}, cache.New())

	_, err := service.Create(context.Background(), subtopic.CreateSubTopicDTO{
		Name:    "Saudações",
		TopicID: uuid.NewString(),
	})
	if !errors.Is(err, topic.ErrTopicNotFound) {
		t.Errorf("Esperava ErrTopicNotFound, recebeu %v", err)
	}
}
