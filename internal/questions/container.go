package questions

import (
	"github.com/exam-ai-app/backend/internal/gemini"
	"gorm.io/gorm"
)

type QuestionsContainer struct {
	Handler *Handler
	Service *Service
}

func NewQuestionsContainer(db *gorm.DB, provider gemini.Provider, archive Archive) *QuestionsContainer {
	logs := NewLogRepository(db)
	service := NewService(provider, archive, logs)
	handler := NewHandler(service)

	return &QuestionsContainer{
		Handler: handler,
		Service: service,
	}
}
