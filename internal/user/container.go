package user

import (
	"gorm.io/gorm"
)

type UserContainer struct {
	Handler    *Handler
	Service    UserService
	Repository UserRepository
}

func NewUserContainer(db *gorm.DB, storage Storage) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, storage, NewGoogleVerifier())
	handler := NewHandler(service)

	return &UserContainer{
		Handler:    handler,
		Service:    service,
		Repository: repo,
	}
}
