package upload

import (
	"time"

	"github.com/google/uuid"
)

// Upload is the metadata row for a user file kept in Drive.
type Upload struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	FileID    string    `gorm:"type:text;not null;index" json:"fileId"`
	Filename  string    `gorm:"type:text" json:"filename"`
	MimeType  string    `gorm:"type:text" json:"mimeType"`
	Size      int64     `gorm:"not null;default:0" json:"size"`
	URL       string    `gorm:"type:text" json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
