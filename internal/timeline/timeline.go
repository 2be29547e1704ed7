package timeline

// A linha do tempo de uma lição intercala blocos de flashcards com um passo
// de prática cobrindo exatamente os cartões recém-estudados. Ela é derivada
// a cada requisição a partir da contagem de sinais da lição e nunca é
// persistida.

type StepKind string

const (
	StepFlashcard StepKind = "FLASHCARD"
	StepPractice  StepKind = "PRACTICE"
)

type Step struct {
	Kind StepKind `json:"kind"`

	// Index é o índice do sinal na ordem canônica da lição (flashcards).
	Index int `json:"index"`

	// Start e End delimitam o intervalo [Start, End) coberto por um passo
	// de prática.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Segment divide itemCount cartões em grupos sequenciais: até 9 cartões são
// divididos em 3 grupos, acima disso sempre em 4. Cada grupo emite seus
// flashcards seguidos de um único passo de prática sobre eles. O último
// grupo absorve o resto da divisão inteira.
func Segment(itemCount int) []Step {
	if itemCount <= 0 {
		return []Step{}
	}

	numGroups := 4
	if itemCount <= 9 {
		numGroups = 3
	}
	groupSize := (itemCount + numGroups - 1) / numGroups

	steps := make([]Step, 0, itemCount+numGroups)
	next := 0
	for g := 0; g < numGroups && next < itemCount; g++ {
		take := groupSize
		if remaining := itemCount - next; take > remaining {
			take = remaining
		}

		start := next
		for i := 0; i < take; i++ {
			steps = append(steps, Step{Kind: StepFlashcard, Index: next})
			next++
		}
		steps = append(steps, Step{Kind: StepPractice, Start: start, End: next})
	}

	return steps
}
