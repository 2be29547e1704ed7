package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sinaliza/sinaliza-api/internal/container"
	"github.com/sinaliza/sinaliza-api/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:       c.UserContainer.Handler,
		TopicHandler:      c.TopicContainer.Handler,
		SubTopicHandler:   c.SubTopicContainer.Handler,
		SignHandler:       c.SignContainer.Handler,
		ProgressHandler:   c.ProgressContainer.Handler,
		BillingHandler:    c.BillingContainer.Handler,
		LearningHandler:   c.LearningContainer.Handler,
		AIPracticeHandler: c.AIPracticeContainer.Handler,
		ImporterHandler:   c.ImporterContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Logger().Infof("API escutando em :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		config.Logger().WithError(err).Fatal("Servidor HTTP encerrou com erro")
	}
}
