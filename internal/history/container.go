package history

import (
	"github.com/exam-ai-app/backend/internal/chat"
)

type HistoryContainer struct {
	Handler *Handler
	Service *Service
}

func NewHistoryContainer(pointers chat.PointerRepository, sessions chat.SessionStore) *HistoryContainer {
	service := NewService(pointers, sessions)
	handler := NewHandler(service)

	return &HistoryContainer{
		Handler: handler,
		Service: service,
	}
}
