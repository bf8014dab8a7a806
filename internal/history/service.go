package history

import (
	"context"
	"errors"
	"time"

	"github.com/exam-ai-app/backend/internal/chat"
	"github.com/exam-ai-app/backend/internal/session"
	"github.com/google/uuid"
)

var ErrUnknownKind = errors.New("unknown session kind")

// SessionSummary is one row in a history listing. The id is the Drive
// file id, the same session key the chat endpoints hand out.
type SessionSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}

// SessionView is a full transcript fetched back from Drive.
type SessionView struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Exam      string            `json:"exam,omitempty"`
	Subject   string            `json:"subject,omitempty"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
	Messages  []session.Message `json:"messages"`
}

type Service struct {
	pointers chat.PointerRepository
	sessions chat.SessionStore
}

func NewService(pointers chat.PointerRepository, sessions chat.SessionStore) *Service {
	return &Service{pointers: pointers, sessions: sessions}
}

func (s *Service) ListSessions(ctx context.Context, userID uuid.UUID, kind string) ([]SessionSummary, error) {
	if kind != chat.KindStudy && kind != chat.KindMentor {
		return nil, ErrUnknownKind
	}

	pointers, err := s.pointers.ListByUserKind(userID, kind)
	if err != nil {
		return nil, err
	}

	summaries := make([]SessionSummary, 0, len(pointers))
	for _, p := range pointers {
		summaries = append(summaries, SessionSummary{
			ID:        p.FileID,
			Title:     p.Title,
			CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return summaries, nil
}

// GetSession replays a stored transcript. Missing or corrupt files come
// back as an empty message list, matching the read-safe session
// semantics everywhere else.
func (s *Service) GetSession(ctx context.Context, fileID string) SessionView {
	doc := s.sessions.ReadSafe(ctx, fileID)
	return SessionView{
		ID:        fileID,
		Type:      doc.Type,
		Exam:      doc.Exam,
		Subject:   doc.Subject,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		Messages:  doc.Messages,
	}
}
