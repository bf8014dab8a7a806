package chat

import (
	"time"

	"github.com/exam-ai-app/backend/internal/exam"
	"github.com/google/uuid"
)

// Assistant kinds. Each kind gets its own Drive folder and history list.
const (
	KindStudy  = "study"
	KindMentor = "mentor"
)

// SessionPointer locates a session file in Drive. The transcript itself
// lives only in the file; this row exists so history can be listed
// without walking Drive folders.
type SessionPointer struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      string    `gorm:"type:text;not null;index" json:"kind"`
	FileID    string    `gorm:"type:text;not null" json:"fileId"`
	Title     string    `gorm:"type:text" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

type TurnRequest struct {
	Message    string          `json:"message"`
	SessionID  string          `json:"sessionId"`
	NewSession bool            `json:"newSession"`
	Exam       string          `json:"exam"`
	Subject    string          `json:"subject"`
	Questions  []exam.Question `json:"questions"`
}

type TurnResult struct {
	Reply     string `json:"reply"`
	SessionID string `json:"sessionId"`
}
