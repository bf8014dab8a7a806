package questions

import (
	"time"

	"github.com/google/uuid"
)

type GenerateRequest struct {
	Exam         string `json:"exam"`
	Subject      string `json:"subject"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"numQuestions"`
}

type ChatRequest struct {
	Prompt    string `json:"prompt"`
	SessionID string `json:"sessionId"`
}

// PromptLog is a lightweight record of a raw Gemini exchange, kept for
// inspection. Written best-effort; never blocks a response.
type PromptLog struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	SessionID    string     `gorm:"type:text;index" json:"sessionId,omitempty"`
	Model        string     `gorm:"type:text" json:"model"`
	LastPrompt   string     `gorm:"type:text" json:"lastPrompt"`
	LastResponse string     `gorm:"type:text" json:"lastResponse"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
