package assessment

type Answer struct {
	Prompt string `json:"prompt"`
	Given  string `json:"given"`
}

// TestAttempt é o envio de um teste de tópico. A correção é feita no
// cliente: Score chega pronto e o motor apenas deriva os agregados.
type TestAttempt struct {
	TopicID string   `json:"topic_id"`
	Answers []Answer `json:"answers"`
	Score   int      `json:"score"`
}

type SubmissionResult struct {
	TotalQuestions int  `json:"total_questions"`
	CorrectAnswers int  `json:"correct_answers"`
	Score          int  `json:"score"`
	IsPassed       bool `json:"is_passed"`
	TopicCompleted bool `json:"topic_completed"`
}
