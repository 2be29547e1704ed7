package question

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sinaliza/sinaliza-api/internal/vocab"
)

const (
	MaxTestQuestions = 20
	maxPerType       = 7
	maxEssay         = 6
	maxDistractors   = 3

	practicePrompt    = "Qual palavra corresponde ao sinal mostrado?"
	trueFalsePromptf  = "O sinal mostrado significa %q?"
	essayPrompt       = "Descreva com suas palavras o significado do sinal mostrado."
	placeholderOption = "Nenhuma das alternativas"
)

// Generator sintetiza questões de prática e de teste. A fonte de
// aleatoriedade é injetada para que os testes possam fixar a semente.
type Generator struct {
	rnd *rand.Rand
}

func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

// BuildPractice monta uma questão de múltipla escolha para cada sinal no
// intervalo [start, end). Os distratores vêm da lista completa da lição,
// não apenas do intervalo.
func (g *Generator) BuildPractice(items []vocab.Sign, start, end int) []Question {
	if start < 0 {
		start = 0
	}
	if end > len(items) {
		end = len(items)
	}
	if start >= end {
		return []Question{}
	}

	questions := make([]Question, 0, end-start)
	for i := start; i < end; i++ {
		item := items[i]

		options := g.buildOptions(item.Word, items)
		questions = append(questions, Question{
			Kind:          MultipleChoice,
			Prompt:        practicePrompt,
			MediaURL:      item.VideoURL,
			Options:       options,
			CorrectAnswer: item.Word,
		})
	}

	g.rnd.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions
}

// BuildTest sintetiza até 20 questões a partir do pool de vocabulário do
// tópico inteiro. As cotas escalam com o tamanho do pool: min(7, V) de
// múltipla escolha e de verdadeiro/falso, min(6, V-cota) dissertativas,
// consumindo fatias disjuntas do pool embaralhado. Tipos posteriores
// recebem menos (ou zero) questões quando o pool é pequeno.
func (g *Generator) BuildTest(pool []vocab.Sign) []Question {
	if len(pool) == 0 {
		return []Question{}
	}

	shuffled := make([]vocab.Sign, len(pool))
	copy(shuffled, pool)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	v := len(shuffled)
	perType := maxPerType
	if v < perType {
		perType = v
	}
	essayQuota := maxEssay
	if rest := v - perType; rest < essayQuota {
		essayQuota = rest
	}
	if essayQuota < 0 {
		essayQuota = 0
	}

	mcqEnd := min(perType, v)
	tfEnd := min(mcqEnd+perType, v)
	essayEnd := min(tfEnd+essayQuota, v)

	questions := make([]Question, 0, essayEnd)

	for _, item := range shuffled[:mcqEnd] {
		options := g.buildOptions(item.Word, pool)
		if len(options) < maxDistractors+1 {
			options = append(options, placeholderOption)
		}
		questions = append(questions, Question{
			Kind:          MultipleChoice,
			Prompt:        practicePrompt,
			MediaURL:      item.VideoURL,
			Options:       options,
			CorrectAnswer: item.Word,
		})
	}

	for _, item := range shuffled[mcqEnd:tfEnd] {
		questions = append(questions, g.buildTrueFalse(item, pool))
	}

	for _, item := range shuffled[tfEnd:essayEnd] {
		questions = append(questions, Question{
			Kind:          Essay,
			Prompt:        essayPrompt,
			MediaURL:      item.VideoURL,
			CorrectAnswer: item.Word,
		})
	}

	g.rnd.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions
}

// Pick seleciona n questões aleatórias sem repetição. Usado quando o tópico
// tem questões pré-autoradas suficientes para um teste inteiro.
func (g *Generator) Pick(questions []Question, n int) []Question {
	if len(questions) <= n {
		picked := make([]Question, len(questions))
		copy(picked, questions)
		return picked
	}

	indices := g.rnd.Perm(len(questions))[:n]
	picked := make([]Question, 0, n)
	for _, idx := range indices {
		picked = append(picked, questions[idx])
	}
	return picked
}

// buildOptions monta as alternativas: a resposta correta mais até 3
// distratores amostrados sem reposição do pool, nunca incluindo o próprio
// item nem textos repetidos.
func (g *Generator) buildOptions(correct string, pool []vocab.Sign) []string {
	candidates := make([]string, 0, len(pool))
	seen := map[string]bool{correct: true}
	for _, s := range pool {
		if seen[s.Word] {
			continue
		}
		seen[s.Word] = true
		candidates = append(candidates, s.Word)
	}

	g.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	take := maxDistractors
	if len(candidates) < take {
		take = len(candidates)
	}

	options := append([]string{correct}, candidates[:take]...)
	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// buildTrueFalse afirma a palavra correta com 50% de chance; caso contrário
// substitui por outra palavra do tópico (resposta falsa), voltando ao caso
// verdadeiro quando não há alternativa.
func (g *Generator) buildTrueFalse(item vocab.Sign, pool []vocab.Sign) Question {
	q := Question{
		Kind:          TrueFalse,
		MediaURL:      item.VideoURL,
		CorrectAnswer: item.Word,
	}

	assertTrue := g.rnd.Intn(2) == 0
	if !assertTrue {
		var alternatives []string
		for _, s := range pool {
			if s.Word != item.Word {
				alternatives = append(alternatives, s.Word)
			}
		}
		if len(alternatives) > 0 {
			wrong := alternatives[g.rnd.Intn(len(alternatives))]
			answer := false
			q.Prompt = fmt.Sprintf(trueFalsePromptf, wrong)
			q.Answer = &answer
			return q
		}
	}

	answer := true
	q.Prompt = fmt.Sprintf(trueFalsePromptf, item.Word)
	q.Answer = &answer
	return q
}
