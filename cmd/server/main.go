package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/sirupsen/logrus"

	"github.com/exam-ai-app/backend/internal/container"
	"github.com/exam-ai-app/backend/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:       c.UserContainer.Handler,
		ExamHandler:       c.ExamContainer.Handler,
		QuestionsHandler:  c.QuestionsContainer.Handler,
		ChatHandler:       c.ChatContainer.Handler,
		HistoryHandler:    c.HistoryContainer.Handler,
		UploadHandler:     c.UploadContainer.Handler,
		SubjectsHandler:   c.SubjectsHandler,
		SuperadminHandler: c.SuperadminHandler,
		OAuthHandler:      c.OAuthHandler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	logrus.Infof("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
