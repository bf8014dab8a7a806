package exam

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Question types. NAT is graded by exact numeric-string match, MSQ by
// set-equality of letter tokens, MCQ by single-letter match.
const (
	TypeMCQ = "MCQ"
	TypeMSQ = "MSQ"
	TypeNAT = "NAT"
)

// Question is one generated exam question. Immutable once generated.
type Question struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	Marks         int               `json:"marks"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options,omitempty"`
	CorrectAnswer string            `json:"correctAnswer"`
	Explanation   string            `json:"explanation,omitempty"`
}

// GradingResult is the per-question verdict. It is returned to the caller
// and rendered into the transcript, never persisted row-by-row.
type GradingResult struct {
	ID            string  `json:"id"`
	Question      string  `json:"question"`
	CorrectAnswer string  `json:"correctAnswer"`
	UserAnswer    *string `json:"userAnswer"`
	IsCorrect     bool    `json:"isCorrect"`
	Marks         int     `json:"marks"`
	Explanation   string  `json:"explanation"`
}

// Score is the aggregate of one attempt.
type Score struct {
	Obtained     int `json:"obtained"`
	TotalMarks   int `json:"totalMarks"`
	CorrectCount int `json:"correctCount"`
}

// Attempt is the persisted pointer to an archived attempt transcript.
// Question-level detail lives only in the uploaded file.
type Attempt struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	FileID    string         `gorm:"type:text;not null" json:"fileId"`
	FileURL   string         `gorm:"type:text" json:"fileUrl"`
	FileName  string         `gorm:"type:text" json:"fileName"`
	Type      string         `gorm:"type:text;not null;default:'exam'" json:"type"`
	Score     datatypes.JSON `gorm:"type:jsonb;not null" json:"score"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}
