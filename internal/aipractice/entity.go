package aipractice

type Question struct {
	Palavra         string   `json:"palavra"`
	Dificuldade     string   `json:"dificuldade"`
	Pergunta        string   `json:"pergunta"`
	Alternativas    []string `json:"alternativas"`
	RespostaCorreta string   `json:"resposta_correta"`
	Explicacao      string   `json:"explicacao"`
}

// PracticeRequest pede questões extras sobre uma lição. O vocabulário vem do
// banco; o cliente só escolhe a lição, a dificuldade e a quantidade.
type PracticeRequest struct {
	SubTopicID  string `json:"sub_topic_id"`
	Dificuldade string `json:"dificuldade"`
	Quantidade  int    `json:"quantidade"`
}
