package exam

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(a *Attempt) error
	ListByUser(userID uuid.UUID) ([]*Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(a *Attempt) error {
	return r.db.Create(a).Error
}

func (r *attemptRepository) ListByUser(userID uuid.UUID) ([]*Attempt, error) {
	var attempts []*Attempt
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
