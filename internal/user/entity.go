package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
)

type User struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FullName         string    `gorm:"type:text" json:"fullName"`
	Email            string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash     string    `gorm:"type:text" json:"-"`
	Role             string    `gorm:"type:text;not null;default:'user'" json:"role"`
	AuthProvider     string    `gorm:"type:text;not null;default:'password'" json:"authProvider"`
	PhotoURL         string    `gorm:"type:text" json:"photoURL"`
	BackgroundURL    string    `gorm:"type:text" json:"backgroundURL"`
	Phone            string    `gorm:"type:text" json:"phone"`
	Description      string    `gorm:"type:text" json:"description"`
	Location         string    `gorm:"type:text" json:"location"`
	Achievements     string    `gorm:"type:text" json:"achievements"`
	PreferredExam    string    `gorm:"type:text" json:"preferredExam"`
	PreferredSubject string    `gorm:"type:text" json:"preferredSubject"`
	DriveRootID      string    `gorm:"type:text" json:"-"`
	ExamCount        int       `gorm:"not null;default:0" json:"examCount"`
	Accuracy         float64   `gorm:"not null;default:0" json:"accuracy"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
