package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/exam-ai-app/backend/internal/config"
	"github.com/exam-ai-app/backend/internal/drive"
	"github.com/exam-ai-app/backend/internal/gemini"
	"github.com/exam-ai-app/backend/internal/session"
	"github.com/google/uuid"
)

var ErrMessageRequired = errors.New("message is required")

const titleMaxLen = 60

// SessionStore is the session-file lifecycle the assistants drive.
// Satisfied by *session.Store.
type SessionStore interface {
	Create(ctx context.Context, folderID, fileName string, doc session.Document) (string, error)
	ReadSafe(ctx context.Context, fileID string) session.Document
	Append(ctx context.Context, fileID string, msg session.Message) error
}

type Storage interface {
	EnsureUserStructure(ctx context.Context, uid string) (*drive.Folders, error)
}

type Service struct {
	provider gemini.Provider
	sessions SessionStore
	storage  Storage
	repo     PointerRepository
}

func NewService(provider gemini.Provider, sessions SessionStore, storage Storage, repo PointerRepository) *Service {
	return &Service{provider: provider, sessions: sessions, storage: storage, repo: repo}
}

func (s *Service) StudyTurn(ctx context.Context, userID uuid.UUID, req TurnRequest) (*TurnResult, error) {
	return s.turn(ctx, userID, KindStudy, req)
}

func (s *Service) MentorTurn(ctx context.Context, userID uuid.UUID, req TurnRequest) (*TurnResult, error) {
	return s.turn(ctx, userID, KindMentor, req)
}

// turn runs one conversation step. New sessions create the Drive file
// with the user message seeded; existing sessions replay prior history
// into the prompt and append strictly, so a stale session id fails the
// turn instead of silently starting over.
func (s *Service) turn(ctx context.Context, userID uuid.UUID, kind string, req TurnRequest) (*TurnResult, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMessageRequired
	}

	sessionID := req.SessionID
	fresh := sessionID == "" || req.NewSession

	var history []session.Message
	if !fresh {
		history = s.sessions.ReadSafe(ctx, sessionID).Messages
	}

	var prompt string
	switch kind {
	case KindMentor:
		prompt = buildMentorPrompt(req, history)
	default:
		prompt = buildStudyPrompt(req, history)
	}

	userMsg := session.Message{Role: "user", Text: req.Message}
	if fresh {
		id, err := s.createSession(ctx, userID, kind, req, userMsg)
		if err != nil {
			return nil, err
		}
		sessionID = id
	} else {
		if err := s.sessions.Append(ctx, sessionID, userMsg); err != nil {
			return nil, err
		}
	}

	raw, err := s.provider.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	reply := limitLines(raw, replyLimit(kind))

	if err := s.sessions.Append(ctx, sessionID, session.Message{Role: "assistant", Text: reply}); err != nil {
		return nil, err
	}

	return &TurnResult{Reply: reply, SessionID: sessionID}, nil
}

func (s *Service) createSession(ctx context.Context, userID uuid.UUID, kind string, req TurnRequest, seed session.Message) (string, error) {
	folders, err := s.storage.EnsureUserStructure(ctx, userID.String())
	if err != nil {
		return "", fmt.Errorf("session folder unavailable: %w", err)
	}
	folderID := folders.Study
	if kind == KindMentor {
		folderID = folders.Mentor
	}

	doc := session.NewDocument(kind, req.Exam, req.Subject, seed)
	fileName := fmt.Sprintf("%s_session_%d.json", kind, time.Now().UnixMilli())
	fileID, err := s.sessions.Create(ctx, folderID, fileName, doc)
	if err != nil {
		return "", err
	}

	pointer := &SessionPointer{
		UserID: userID,
		Kind:   kind,
		FileID: fileID,
		Title:  sessionTitle(req.Message),
	}
	if err := s.repo.Create(pointer); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Session pointer write failed, history listing will miss this session")
	}
	return fileID, nil
}

func replyLimit(kind string) int {
	if kind == KindMentor {
		return mentorReplyLines
	}
	return studyReplyLines
}

func sessionTitle(message string) string {
	title := strings.TrimSpace(message)
	if i := strings.IndexByte(title, '\n'); i >= 0 {
		title = title[:i]
	}
	if len(title) > titleMaxLen {
		title = title[:titleMaxLen]
	}
	return title
}
