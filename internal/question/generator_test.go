package question_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/question"
	"github.com/sinaliza/sinaliza-api/internal/vocab"
)

func makeSigns(words ...string) []vocab.Sign {
	signs := make([]vocab.Sign, 0, len(words))
	for i, w := range words {
		signs = append(signs, vocab.Sign{
			ID:       uuid.New(),
			Word:     w,
			Meaning:  "significado de " + w,
			VideoURL: "videos/" + w + ".mp4",
			Position: i,
		})
	}
	return signs
}

func newSeededGenerator(seed int64) *question.Generator {
	return question.NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestBuildPractice(t *testing.T) {
	signs := makeSigns("casa", "água", "comer", "escola", "família", "amigo", "trabalho")

	t.Run("FullRange", func(t *testing.T) {
		g := newSeededGenerator(1)
		questions := g.BuildPractice(signs, 0, 3)

		if len(questions) != 3 {
			t.Fatalf("Esperava 3 questões, recebeu %d", len(questions))
		}

		for _, q := range questions {
			if q.Kind != question.MultipleChoice {
				t.Errorf("Questão de prática deveria ser múltipla escolha, recebeu %s", q.Kind)
			}
			if len(q.Options) > 4 {
				t.Errorf("Questão com %d alternativas excede o máximo de 4", len(q.Options))
			}

			found := false
			seen := map[string]bool{}
			for _, opt := range q.Options {
				if seen[opt] {
					t.Errorf("Alternativa duplicada %q na questão de %q", opt, q.CorrectAnswer)
				}
				seen[opt] = true
				if opt == q.CorrectAnswer {
					found = true
				}
			}
			if !found {
				t.Errorf("Resposta correta %q ausente das alternativas %v", q.CorrectAnswer, q.Options)
			}
		}
	})

	t.Run("DistractorsComeFromWholeLesson", func(t *testing.T) {
		// Os distratores podem vir de fora do intervalo praticado.
		valid := map[string]bool{}
		for _, s := range signs {
			valid[s.Word] = true
		}

		for seed := int64(0); seed < 20; seed++ {
			g := newSeededGenerator(seed)
			for _, q := range g.BuildPractice(signs, 0, 2) {
				for _, opt := range q.Options {
					if !valid[opt] {
						t.Fatalf("Alternativa %q não pertence ao vocabulário da lição", opt)
					}
				}
			}
		}
	})

	t.Run("SmallLesson", func(t *testing.T) {
		small := makeSigns("sim", "não")
		g := newSeededGenerator(7)
		questions := g.BuildPractice(small, 0, 2)

		for _, q := range questions {
			if len(q.Options) != 2 {
				t.Errorf("Lição com 2 sinais deveria gerar 2 alternativas, recebeu %d", len(q.Options))
			}
		}
	})

	t.Run("EmptyAndInvertedRange", func(t *testing.T) {
		g := newSeededGenerator(3)
		if qs := g.BuildPractice(signs, 3, 3); len(qs) != 0 {
			t.Errorf("Intervalo vazio deveria gerar zero questões, gerou %d", len(qs))
		}
		if qs := g.BuildPractice(signs, 5, 2); len(qs) != 0 {
			t.Errorf("Intervalo invertido deveria gerar zero questões, gerou %d", len(qs))
		}
	})
}

func TestBuildTest(t *testing.T) {
	t.Run("EmptyPool", func(t *testing.T) {
		g := newSeededGenerator(1)
		if qs := g.BuildTest(nil); len(qs) != 0 {
			t.Errorf("Pool vazio deveria gerar zero questões, gerou %d", len(qs))
		}
	})

	t.Run("SmallPoolConsumedByMultipleChoice", func(t *testing.T) {
		// Com 5 sinais, perType = min(7,5) = 5 consome o pool inteiro antes
		// das cotas de verdadeiro/falso e dissertativa.
		pool := makeSigns("casa", "água", "comer", "escola", "família")
		g := newSeededGenerator(42)
		questions := g.BuildTest(pool)

		if len(questions) != 5 {
			t.Fatalf("Esperava 5 questões para pool de 5 sinais, recebeu %d", len(questions))
		}
		for _, q := range questions {
			if q.Kind != question.MultipleChoice {
				t.Errorf("Pool de 5 deveria gerar somente múltipla escolha, recebeu %s", q.Kind)
			}
		}
	})

	t.Run("FullPoolQuotas", func(t *testing.T) {
		pool := makeSigns(
			"casa", "água", "comer", "escola", "família", "amigo", "trabalho",
			"cidade", "livro", "ajudar", "obrigado", "desculpa", "bom", "ruim",
			"dia", "noite", "nome", "idade", "onde", "quando",
		)
		g := newSeededGenerator(99)
		questions := g.BuildTest(pool)

		if len(questions) != 20 {
			t.Fatalf("Esperava 20 questões, recebeu %d", len(questions))
		}

		counts := map[question.Kind]int{}
		for _, q := range questions {
			counts[q.Kind]++
		}
		if counts[question.MultipleChoice] != 7 {
			t.Errorf("Esperava 7 múltipla escolha, recebeu %d", counts[question.MultipleChoice])
		}
		if counts[question.TrueFalse] != 7 {
			t.Errorf("Esperava 7 verdadeiro/falso, recebeu %d", counts[question.TrueFalse])
		}
		if counts[question.Essay] != 6 {
			t.Errorf("Esperava 6 dissertativas, recebeu %d", counts[question.Essay])
		}
	})

	t.Run("TrueFalseAlwaysHasAnswer", func(t *testing.T) {
		pool := makeSigns(
			"casa", "água", "comer", "escola", "família", "amigo", "trabalho",
			"cidade", "livro", "ajudar", "obrigado", "desculpa", "bom", "ruim", "dia",
		)
		for seed := int64(0); seed < 30; seed++ {
			g := newSeededGenerator(seed)
			for _, q := range g.BuildTest(pool) {
				if q.Kind != question.TrueFalse {
					continue
				}
				if q.Answer == nil {
					t.Fatal("Questão verdadeiro/falso sem resposta definida")
				}
				if q.Prompt == "" {
					t.Fatal("Questão verdadeiro/falso sem enunciado")
				}
			}
		}
	})

	t.Run("PlaceholderPadsSmallPool", func(t *testing.T) {
		pool := makeSigns("casa", "água", "comer")

		for seed := int64(0); seed < 20; seed++ {
			g := newSeededGenerator(seed)
			for _, q := range g.BuildTest(pool) {
				if q.Kind != question.MultipleChoice {
					continue
				}
				if len(q.Options) != 4 {
					t.Fatalf("Pool de 3 palavras deveria completar 4 alternativas, recebeu %d", len(q.Options))
				}

				var hasPlaceholder, hasCorrect bool
				for _, opt := range q.Options {
					if opt == "Nenhuma das alternativas" {
						hasPlaceholder = true
					}
					if opt == q.CorrectAnswer {
						hasCorrect = true
					}
				}
				if !hasPlaceholder {
					t.Error("Esperava a alternativa de preenchimento 'Nenhuma das alternativas'")
				}
				if !hasCorrect {
					t.Error("A resposta correta deveria estar entre as alternativas")
				}
			}
		}
	})

	t.Run("TrueFalseFallsBackToTrue", func(t *testing.T) {
		// Todas as lições do tópico compartilham a mesma palavra: não existe
		// palavra errada para afirmar, então toda questão V/F afirma a
		// correta e a resposta é sempre verdadeira.
		pool := makeSigns("olá", "olá", "olá", "olá", "olá", "olá", "olá", "olá", "olá", "olá")

		for seed := int64(0); seed < 30; seed++ {
			g := newSeededGenerator(seed)
			for _, q := range g.BuildTest(pool) {
				if q.Kind != question.TrueFalse {
					continue
				}
				if q.Answer == nil || !*q.Answer {
					t.Fatalf("Sem palavra alternativa a resposta deveria ser verdadeira, recebeu %+v", q.Answer)
				}
			}
		}
	})

	t.Run("EssayHasNoOptions", func(t *testing.T) {
		pool := makeSigns(
			"casa", "água", "comer", "escola", "família", "amigo", "trabalho",
			"cidade", "livro", "ajudar", "obrigado", "desculpa", "bom", "ruim",
			"dia", "noite", "nome", "idade", "onde", "quando",
		)
		g := newSeededGenerator(5)
		for _, q := range g.BuildTest(pool) {
			if q.Kind == question.Essay && len(q.Options) != 0 {
				t.Errorf("Questão dissertativa não deveria ter alternativas, recebeu %v", q.Options)
			}
		}
	})
}

func TestPick(t *testing.T) {
	questions := make([]question.Question, 30)
	for i := range questions {
		questions[i] = question.Question{Kind: question.MultipleChoice, Prompt: string(rune('a' + i))}
	}

	g := newSeededGenerator(11)

	picked := g.Pick(questions, 20)
	if len(picked) != 20 {
		t.Fatalf("Esperava 20 questões selecionadas, recebeu %d", len(picked))
	}

	seen := map[string]bool{}
	for _, q := range picked {
		if seen[q.Prompt] {
			t.Errorf("Questão %q selecionada mais de uma vez", q.Prompt)
		}
		seen[q.Prompt] = true
	}

	few := g.Pick(questions[:5], 20)
	if len(few) != 5 {
		t.Errorf("Com menos questões que o pedido, Pick deveria devolver todas (5), devolveu %d", len(few))
	}
}
