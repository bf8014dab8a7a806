package chat

import (
	"github.com/exam-ai-app/backend/internal/gemini"
	"gorm.io/gorm"
)

type ChatContainer struct {
	Handler    *Handler
	Service    *Service
	Repository PointerRepository
}

func NewChatContainer(db *gorm.DB, provider gemini.Provider, sessions SessionStore, storage Storage) *ChatContainer {
	repo := NewRepository(db)
	service := NewService(provider, sessions, storage, repo)
	handler := NewHandler(service)

	return &ChatContainer{
		Handler:    handler,
		Service:    service,
		Repository: repo,
	}
}
