package question

type Kind string

const (
	MultipleChoice Kind = "MULTIPLE_CHOICE"
	TrueFalse      Kind = "TRUE_FALSE"
	Essay          Kind = "ESSAY"
)

type Question struct {
	Kind     Kind     `json:"kind"`
	Prompt   string   `json:"prompt"`
	MediaURL string   `json:"media_url,omitempty"`
	Options  []string `json:"options,omitempty"`

	// CorrectAnswer é o texto da alternativa correta (múltipla escolha) ou
	// a resposta de referência (dissertativa).
	CorrectAnswer string `json:"correct_answer,omitempty"`

	// Answer é a resposta esperada de questões verdadeiro/falso.
	Answer *bool `json:"answer,omitempty"`
}
