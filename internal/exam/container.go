package exam

import (
	"gorm.io/gorm"
)

type ExamContainer struct {
	Handler *Handler
	Service Service
}

func NewExamContainer(db *gorm.DB, storage Storage) *ExamContainer {
	repo := NewRepository(db)
	service := NewService(repo, storage)
	handler := NewHandler(service)

	return &ExamContainer{
		Handler: handler,
		Service: service,
	}
}
