package chat

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PointerRepository interface {
	Create(p *SessionPointer) error
	ListByUserKind(userID uuid.UUID, kind string) ([]*SessionPointer, error)
}

type pointerRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PointerRepository {
	return &pointerRepository{db: db}
}

func (r *pointerRepository) Create(p *SessionPointer) error {
	return r.db.Create(p).Error
}

func (r *pointerRepository) ListByUserKind(userID uuid.UUID, kind string) ([]*SessionPointer, error) {
	var pointers []*SessionPointer
	if err := r.db.
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at DESC").
		Find(&pointers).Error; err != nil {
		return nil, err
	}
	return pointers, nil
}
