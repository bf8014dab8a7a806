package upload

import (
	"github.com/exam-ai-app/backend/internal/audit"
	"github.com/exam-ai-app/backend/internal/user"
	"gorm.io/gorm"
)

type UploadContainer struct {
	Handler *Handler
	Service *Service
}

func NewUploadContainer(db *gorm.DB, storage Storage, users user.UserRepository, recorder audit.Recorder) *UploadContainer {
	repo := NewRepository(db)
	service := NewService(storage, repo, users, recorder)
	handler := NewHandler(service)

	return &UploadContainer{
		Handler: handler,
		Service: service,
	}
}
