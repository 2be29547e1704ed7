package importer_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"github.com/sinaliza/sinaliza-api/internal/importer"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"github.com/sinaliza/sinaliza-api/internal/vocab"
	"github.com/xuri/excelize/v2"
)

type fakeTopicRepo struct {
	topics []topic.Topic
}

func (f *fakeTopicRepo) Create(t *topic.Topic) error {
	f.topics = append(f.topics, *t)
	return nil
}
func (f *fakeTopicRepo) FindByID(id uuid.UUID) (*topic.Topic, error) { return nil, nil }
func (f *fakeTopicRepo) FindAllOrdered() ([]topic.Topic, error)      { return f.topics, nil }
func (f *fakeTopicRepo) Update(t *topic.Topic) error                 { return nil }
func (f *fakeTopicRepo) Delete(id uuid.UUID) error                   { return nil }

type fakeSubTopicRepo struct {
	subs []subtopic.SubTopic
}

func (f *fakeSubTopicRepo) Create(st *subtopic.SubTopic) error {
	f.subs = append(f.subs, *st)
	return nil
}
func (f *fakeSubTopicRepo) FindByID(id uuid.UUID) (*subtopic.SubTopic, error) { return nil, nil }
func (f *fakeSubTopicRepo) FindByTopicID(topicID uuid.UUID) ([]subtopic.SubTopic, error) {
	var out []subtopic.SubTopic
	for _, st := range f.subs {
		if st.TopicID == topicID {
			out = append(out, st)
		}
	}
	return out, nil
}
func (f *fakeSubTopicRepo) FirstByTopicID(topicID uuid.UUID) (*subtopic.SubTopic, error) {
	return nil, nil
}
func (f *fakeSubTopicRepo) Update(st *subtopic.SubTopic) error { return nil }
func (f *fakeSubTopicRepo) Delete(id uuid.UUID) error          { return nil }

type fakeSignRepo struct {
	signs []*vocab.Sign
}

func (f *fakeSignRepo) Create(s *vocab.Sign) error { return nil }
func (f *fakeSignRepo) CreateBatch(signs []*vocab.Sign) error {
	f.signs = append(f.signs, signs...)
	return nil
}
func (f *fakeSignRepo) FindByID(id uuid.UUID) (*vocab.Sign, error) { return nil, nil }
func (f *fakeSignRepo) ListBySubTopic(subTopicID uuid.UUID) ([]vocab.Sign, error) {
	var out []vocab.Sign
	for _, s := range f.signs {
		if s.SubTopicID == subTopicID {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (f *fakeSignRepo) RandomPoolByTopic(topicID uuid.UUID, limit int) ([]vocab.Sign, error) {
	return nil, nil
}
func (f *fakeSignRepo) Update(s *vocab.Sign) error { return nil }
func (f *fakeSignRepo) Delete(id uuid.UUID) error  { return nil }

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []string{"Tópico", "Lição", "Palavra", "Significado", "URL do vídeo"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("Falha ao escrever cabeçalho: %v", err)
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("Falha ao escrever linha %d: %v", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Falha ao serializar planilha: %v", err)
	}
	return &buf
}

type fakeInvalidator struct {
	deleted []string
}

func (f *fakeInvalidator) Delete(ctx context.Context, keys ...string) {
	f.deleted = append(f.deleted, keys...)
}

func TestImportCatalog(t *testing.T) {
	topicRepo := &fakeTopicRepo{}
	subTopicRepo := &fakeSubTopicRepo{}
	signRepo := &fakeSignRepo{}
	inv := &fakeInvalidator{}
	service := importer.NewService(topicRepo, subTopicRepo, signRepo, inv)

	buf := buildWorkbook(t, [][]string{
		{"Cumprimentos", "Saudações", "Olá", "Cumprimento inicial", "https://cdn.example.com/ola.mp4"},
		{"Cumprimentos", "Saudações", "Bom dia", "Saudação matinal", "https://cdn.example.com/bom-dia.mp4"},
		{"Cumprimentos", "Despedidas", "Tchau", "Despedida informal", ""},
		{"Família", "Parentes", "Mãe", "", "https://cdn.example.com/mae.mp4"},
		{"", "Sem tópico", "Inválida", "", ""},
	})

	result, err := service.ImportCatalog(context.Background(), buf)
	if err != nil {
		t.Fatalf("ImportCatalog falhou: %v", err)
	}

	if result.TotalProcessed != 5 {
		t.Errorf("Esperava 5 linhas processadas, recebeu %d", result.TotalProcessed)
	}
	if result.TopicsCreated != 2 {
		t.Errorf("Esperava 2 tópicos criados, recebeu %d", result.TopicsCreated)
	}
	if result.SubTopicsCreated != 3 {
		t.Errorf("Esperava 3 lições criadas, recebeu %d", result.SubTopicsCreated)
	}
	if result.SignsCreated != 4 {
		t.Errorf("Esperava 4 sinais criados, recebeu %d", result.SignsCreated)
	}
	if len(result.Errors) != 1 {
		t.Errorf("A linha sem tópico deveria gerar 1 erro, recebeu %d: %v", len(result.Errors), result.Errors)
	}

	// Posições seguem a ordem da planilha dentro de cada lição.
	var saudacoes []*vocab.Sign
	for _, s := range signRepo.signs {
		for _, st := range subTopicRepo.subs {
			if st.ID == s.SubTopicID && st.Name == "Saudações" {
				saudacoes = append(saudacoes, s)
			}
		}
	}
	if len(saudacoes) != 2 {
		t.Fatalf("Esperava 2 sinais em Saudações, recebeu %d", len(saudacoes))
	}
	if saudacoes[0].Position != 0 || saudacoes[1].Position != 1 {
		t.Errorf("Posições esperadas 0 e 1, recebeu %d e %d", saudacoes[0].Position, saudacoes[1].Position)
	}

	if len(inv.deleted) != 1 || inv.deleted[0] != cache.CatalogPathKey {
		t.Errorf("A importação deveria invalidar %q, invalidou %v", cache.CatalogPathKey, inv.deleted)
	}
}

func TestImportCatalogEmptySheet(t *testing.T) {
	service := importer.NewService(&fakeTopicRepo{}, &fakeSubTopicRepo{}, &fakeSignRepo{}, cache.New())

	buf := buildWorkbook(t, nil)
	_, err := service.ImportCatalog(context.Background(), buf)
	if !errors.Is(err, importer.ErrEmptySheet) {
		t.Errorf("Planilha só com cabeçalho deveria devolver ErrEmptySheet, recebeu %v", err)
	}
}

func TestImportCatalogReimportDoesNotDuplicate(t *testing.T) {
	topicRepo := &fakeTopicRepo{}
	subTopicRepo := &fakeSubTopicRepo{}
	signRepo := &fakeSignRepo{}
	service := importer.NewService(topicRepo, subTopicRepo, signRepo, cache.New())

	rows := [][]string{
		{"Cumprimentos", "Saudações", "Olá", "Cumprimento inicial", ""},
		{"Cumprimentos", "Saudações", "Bom dia", "Saudação matinal", ""},
	}

	if _, err := service.ImportCatalog(context.Background(), buildWorkbook(t, rows)); err != nil {
		t.Fatalf("Primeira importação falhou: %v", err)
	}

	result, err := service.ImportCatalog(context.Background(), buildWorkbook(t, rows))
	if err != nil {
		t.Fatalf("Segunda importação falhou: %v", err)
	}

	if result.SignsCreated != 0 || result.SignsSkipped != 2 {
		t.Errorf("Reimportação deveria pular os 2 sinais existentes, criou %d e pulou %d",
			result.SignsCreated, result.SignsSkipped)
	}
	if len(signRepo.signs) != 2 {
		t.Errorf("Reimportação não deveria duplicar sinais: esperava 2, banco ficou com %d", len(signRepo.signs))
	}

	// Uma planilha nova com uma palavra inédita continua a numeração da lição.
	extra, err := service.ImportCatalog(context.Background(), buildWorkbook(t, [][]string{
		{"Cumprimentos", "Saudações", "Boa noite", "", ""},
	}))
	if err != nil {
		t.Fatalf("Terceira importação falhou: %v", err)
	}
	if extra.SignsCreated != 1 {
		t.Fatalf("Esperava 1 sinal novo, recebeu %d", extra.SignsCreated)
	}
	if got := signRepo.signs[len(signRepo.signs)-1].Position; got != 2 {
		t.Errorf("Palavra nova deveria receber a posição 2, recebeu %d", got)
	}
}

func TestImportCatalogReusesExistingTopics(t *testing.T) {
	existingID := uuid.New()
	topicRepo := &fakeTopicRepo{topics: []topic.Topic{
		{ID: existingID, Name: "Cumprimentos", SortOrder: 1},
	}}
	subTopicRepo := &fakeSubTopicRepo{}
	signRepo := &fakeSignRepo{}
	service := importer.NewService(topicRepo, subTopicRepo, signRepo, cache.New())

	buf := buildWorkbook(t, [][]string{
		{"cumprimentos", "Saudações", "Olá", "", ""},
	})

	result, err := service.ImportCatalog(context.Background(), buf)
	if err != nil {
		t.Fatalf("ImportCatalog falhou: %v", err)
	}

	if result.TopicsCreated != 0 {
		t.Errorf("Tópico existente não deveria ser recriado, criou %d", result.TopicsCreated)
	}
	if len(subTopicRepo.subs) != 1 || subTopicRepo.subs[0].TopicID != existingID {
		t.Error("A lição nova deveria apontar para o tópico existente")
	}
}
