package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/cache"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
	"github.com/sinaliza/sinaliza-api/internal/vocab"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("spreadsheet has no data rows")

// Result resume uma importação de catálogo: o que foi criado e os erros por
// linha que não interromperam o restante da planilha.
type Result struct {
	TotalProcessed   int      `json:"total_processed"`
	TopicsCreated    int      `json:"topics_created"`
	SubTopicsCreated int      `json:"subtopics_created"`
	SignsCreated     int      `json:"signs_created"`
	SignsSkipped     int      `json:"signs_skipped"`
	Errors           []string `json:"errors,omitempty"`
}

type ImportService interface {
	// ImportCatalog lê uma planilha .xlsx com as colunas
	// Tópico | Lição | Palavra | Significado | URL do vídeo
	// e cria tópicos, lições e sinais que ainda não existem. Linhas
	// inválidas são registradas no resultado e não abortam as demais.
	ImportCatalog(ctx context.Context, file io.Reader) (*Result, error)
}

type importService struct {
	topicRepo    topic.TopicRepository
	subTopicRepo subtopic.SubTopicRepository
	signRepo     vocab.SignRepository
	cache        cache.Invalidator
}

func NewService(
	topicRepo topic.TopicRepository,
	subTopicRepo subtopic.SubTopicRepository,
	signRepo vocab.SignRepository,
	c cache.Invalidator,
) ImportService {
	return &importService{
		topicRepo:    topicRepo,
		subTopicRepo: subTopicRepo,
		signRepo:     signRepo,
		cache:        c,
	}
}

func (s *importService) ImportCatalog(ctx context.Context, file io.Reader) (*Result, error) {
	log := config.WithContext(ctx)

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir planilha: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}
	if len(rows) <= 1 {
		return nil, ErrEmptySheet
	}

	result := &Result{}
	state := newImportState(s)

	for i, row := range rows {
		if i == 0 {
			// Cabeçalho.
			continue
		}
		result.TotalProcessed++

		if err := state.processRow(row, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: %v", i+1, err))
		}
	}

	if err := state.flush(result); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, cache.CatalogPathKey)

	log.WithFields(logrus.Fields{
		"rows":      result.TotalProcessed,
		"topics":    result.TopicsCreated,
		"subtopics": result.SubTopicsCreated,
		"signs":     result.SignsCreated,
		"skipped":   result.SignsSkipped,
		"errors":    len(result.Errors),
	}).Info("Catálogo importado da planilha")
	return result, nil
}

// importState carrega o catálogo existente uma vez e acumula os sinais novos
// para inserir em lote no final.
type importState struct {
	svc *importService

	topicsByName   map[string]*topic.Topic
	subTopicsByKey map[string]*subtopic.SubTopic
	seenSigns      map[string]bool
	nextPosition   map[string]int
	pendingSigns   []*vocab.Sign
	nextTopicOrder int
}

func newImportState(svc *importService) *importState {
	state := &importState{
		svc:            svc,
		topicsByName:   map[string]*topic.Topic{},
		subTopicsByKey: map[string]*subtopic.SubTopic{},
		seenSigns:      map[string]bool{},
		nextPosition:   map[string]int{},
	}

	topics, err := svc.topicRepo.FindAllOrdered()
	if err == nil {
		for i := range topics {
			state.topicsByName[strings.ToLower(topics[i].Name)] = &topics[i]
			state.nextTopicOrder = topics[i].SortOrder + 1

			subs, err := svc.subTopicRepo.FindByTopicID(topics[i].ID)
			if err != nil {
				continue
			}
			for j := range subs {
				key := topics[i].ID.String() + "|" + strings.ToLower(subs[j].Name)
				state.subTopicsByKey[key] = &subs[j]
				state.loadExistingSigns(subs[j].ID)
			}
		}
	}

	return state
}

// loadExistingSigns registra as palavras já cadastradas na lição, para que
// reimportar a mesma planilha não duplique sinais nem reinicie posições.
func (st *importState) loadExistingSigns(subTopicID uuid.UUID) {
	signs, err := st.svc.signRepo.ListBySubTopic(subTopicID)
	if err != nil {
		return
	}

	posKey := subTopicID.String()
	for i := range signs {
		st.seenSigns[posKey+"|"+strings.ToLower(signs[i].Word)] = true
		if signs[i].Position >= st.nextPosition[posKey] {
			st.nextPosition[posKey] = signs[i].Position + 1
		}
	}
}

func (st *importState) processRow(row []string, result *Result) error {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	topicName := cell(0)
	subTopicName := cell(1)
	word := cell(2)
	meaning := cell(3)
	videoURL := cell(4)

	if topicName == "" || subTopicName == "" || word == "" {
		return errors.New("tópico, lição e palavra são obrigatórios")
	}

	t, err := st.getOrCreateTopic(topicName, result)
	if err != nil {
		return err
	}

	lesson, err := st.getOrCreateSubTopic(t, subTopicName, result)
	if err != nil {
		return err
	}

	posKey := lesson.ID.String()
	signKey := posKey + "|" + strings.ToLower(word)
	if st.seenSigns[signKey] {
		result.SignsSkipped++
		return nil
	}

	st.seenSigns[signKey] = true
	st.pendingSigns = append(st.pendingSigns, &vocab.Sign{
		Word:       word,
		Meaning:    meaning,
		VideoURL:   videoURL,
		SubTopicID: lesson.ID,
		Position:   st.nextPosition[posKey],
	})
	st.nextPosition[posKey]++
	return nil
}

func (st *importState) getOrCreateTopic(name string, result *Result) (*topic.Topic, error) {
	if t, ok := st.topicsByName[strings.ToLower(name)]; ok {
		return t, nil
	}

	t := &topic.Topic{
		ID:        uuid.New(),
		Name:      name,
		Status:    topic.PUBLISHED,
		SortOrder: st.nextTopicOrder,
	}
	if err := st.svc.topicRepo.Create(t); err != nil {
		return nil, fmt.Errorf("falha ao criar tópico %q: %w", name, err)
	}

	st.nextTopicOrder++
	st.topicsByName[strings.ToLower(name)] = t
	result.TopicsCreated++
	return t, nil
}

func (st *importState) getOrCreateSubTopic(t *topic.Topic, name string, result *Result) (*subtopic.SubTopic, error) {
	key := t.ID.String() + "|" + strings.ToLower(name)
	if lesson, ok := st.subTopicsByKey[key]; ok {
		return lesson, nil
	}

	lesson := &subtopic.SubTopic{
		ID:      uuid.New(),
		Name:    name,
		TopicID: t.ID,
	}
	if err := st.svc.subTopicRepo.Create(lesson); err != nil {
		return nil, fmt.Errorf("falha ao criar lição %q: %w", name, err)
	}

	st.subTopicsByKey[key] = lesson
	result.SubTopicsCreated++
	return lesson, nil
}

func (st *importState) flush(result *Result) error {
	if len(st.pendingSigns) == 0 {
		return nil
	}
	if err := st.svc.signRepo.CreateBatch(st.pendingSigns); err != nil {
		return fmt.Errorf("falha ao inserir sinais: %w", err)
	}
	result.SignsCreated = len(st.pendingSigns)
	return nil
}
