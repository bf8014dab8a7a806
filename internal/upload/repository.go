package upload

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadRepository interface {
	Create(u *Upload) error
	DeleteByFileID(ownerID uuid.UUID, fileID string) error
}

type uploadRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(u *Upload) error {
	return r.db.Create(u).Error
}

func (r *uploadRepository) DeleteByFileID(ownerID uuid.UUID, fileID string) error {
	return r.db.
		Where("owner_id = ? AND file_id = ?", ownerID, fileID).
		Delete(&Upload{}).Error
}
