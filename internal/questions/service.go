package questions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/exam-ai-app/backend/internal/config"
	"github.com/exam-ai-app/backend/internal/drive"
	"github.com/exam-ai-app/backend/internal/exam"
	"github.com/exam-ai-app/backend/internal/gemini"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSubjectRequired = errors.New("subject is required")
	ErrPromptRequired  = errors.New("prompt is required")
)

const (
	defaultCount = 10
	maxCount     = 50
)

// Archive is the slice of Drive the generator uses to keep a copy of
// every generated paper in the shared questions folder.
type Archive interface {
	QuestionsFolder(ctx context.Context) (string, error)
	Upload(ctx context.Context, folderID, name, mimeType string, data []byte) (*drive.UploadedFile, error)
}

type LogRepository interface {
	Record(log *PromptLog) error
}

type Service struct {
	provider gemini.Provider
	archive  Archive
	logs     LogRepository
}

func NewService(provider gemini.Provider, archive Archive, logs LogRepository) *Service {
	return &Service{provider: provider, archive: archive, logs: logs}
}

// Generate produces a fresh question paper for the requested exam,
// subject and difficulty. The model response must be a strict JSON
// array; anything else fails the call.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) ([]exam.Question, error) {
	if strings.TrimSpace(req.Subject) == "" {
		return nil, ErrSubjectRequired
	}

	count := req.NumQuestions
	if count <= 0 {
		count = defaultCount
	}
	if count > maxCount {
		count = maxCount
	}
	if req.Difficulty == "" {
		req.Difficulty = "Medium"
	}

	prompt := BuildPrompt(req, count)
	raw, err := s.provider.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	list, err := ParseQuestions(raw)
	if err != nil {
		return nil, err
	}

	s.archiveQuestions(ctx, req, list)
	return list, nil
}

// Raw runs an arbitrary prompt through the model and records the
// exchange. The prompt log is best-effort.
func (s *Service) Raw(ctx context.Context, userID *uuid.UUID, req ChatRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", ErrPromptRequired
	}

	text, err := s.provider.GenerateText(ctx, req.Prompt)
	if err != nil {
		return "", err
	}

	if s.logs != nil {
		entry := &PromptLog{
			UserID:       userID,
			SessionID:    req.SessionID,
			Model:        "gemini",
			LastPrompt:   req.Prompt,
			LastResponse: text,
		}
		if err := s.logs.Record(entry); err != nil {
			config.WithContext(ctx).WithError(err).Warn("Prompt log write failed")
		}
	}
	return text, nil
}

// archiveQuestions keeps a copy of the generated paper in the shared
// questions folder. Failures are logged and swallowed: generation
// already succeeded from the caller's point of view.
func (s *Service) archiveQuestions(ctx context.Context, req GenerateRequest, list []exam.Question) {
	if s.archive == nil {
		return
	}
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"exam":    req.Exam,
		"subject": req.Subject,
	})

	folderID, err := s.archive.QuestionsFolder(ctx)
	if err != nil || folderID == "" {
		log.WithError(err).Warn("Questions folder unavailable, paper not archived")
		return
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		log.WithError(err).Warn("Paper marshal failed, not archived")
		return
	}

	name := fmt.Sprintf("questions_%s_%s_%d.json",
		sanitize(req.Exam, "exam"), sanitize(req.Subject, "subject"), time.Now().UnixMilli())
	if _, err := s.archive.Upload(ctx, folderID, name, "application/json", data); err != nil {
		log.WithError(err).Warn("Paper archive upload failed")
	}
}

func sanitize(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return strings.ReplaceAll(s, " ", "_")
}
