package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/exam-ai-app/backend/internal/drive"
	"github.com/exam-ai-app/backend/internal/session"
	"github.com/google/uuid"
)

type fakeProvider struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeProvider) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeSessions struct {
	docs       map[string]session.Document
	nextID     int
	createdIn  string
	failCreate bool
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{docs: map[string]session.Document{}}
}

func (f *fakeSessions) Create(_ context.Context, folderID, _ string, doc session.Document) (string, error) {
	if f.failCreate {
		return "", errors.New("storage outage")
	}
	f.nextID++
	id := fmt.Sprintf("sess-%d", f.nextID)
	f.createdIn = folderID
	f.docs[id] = doc
	return id, nil
}

func (f *fakeSessions) ReadSafe(_ context.Context, fileID string) session.Document {
	if doc, ok := f.docs[fileID]; ok {
		return doc
	}
	return session.Document{Messages: []session.Message{}}
}

func (f *fakeSessions) Append(_ context.Context, fileID string, msg session.Message) error {
	doc, ok := f.docs[fileID]
	if !ok {
		return errors.New("session not readable")
	}
	doc.Messages = append(doc.Messages, msg)
	f.docs[fileID] = doc
	return nil
}

type fakeStorage struct {
	fail bool
}

func (f *fakeStorage) EnsureUserStructure(_ context.Context, _ string) (*drive.Folders, error) {
	if f.fail {
		return nil, errors.New("drive unreachable")
	}
	return &drive.Folders{Study: "study-folder", Mentor: "mentor-folder"}, nil
}

type fakePointers struct {
	created []*SessionPointer
	err     error
}

func (f *fakePointers) Create(p *SessionPointer) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakePointers) ListByUserKind(_ uuid.UUID, _ string) ([]*SessionPointer, error) {
	return f.created, nil
}

func TestTurnStartsNewSession(t *testing.T) {
	provider := &fakeProvider{response: "Binary search halves the range."}
	sessions := newFakeSessions()
	pointers := &fakePointers{}
	svc := NewService(provider, sessions, &fakeStorage{}, pointers)
	userID := uuid.New()

	result, err := svc.StudyTurn(context.Background(), userID, TurnRequest{Message: "explain binary search"})
	if err != nil {
		t.Fatalf("StudyTurn failed: %v", err)
	}

	if result.SessionID == "" {
		t.Fatal("a new session must hand back its id")
	}
	if sessions.createdIn != "study-folder" {
		t.Errorf("study sessions must land in the study folder, got %q", sessions.createdIn)
	}

	doc := sessions.docs[result.SessionID]
	if len(doc.Messages) != 2 {
		t.Fatalf("new session must hold user + assistant turns, got %d", len(doc.Messages))
	}
	if doc.Messages[0].Role != "user" || doc.Messages[1].Role != "assistant" {
		t.Errorf("message roles wrong: %+v", doc.Messages)
	}
	if doc.Messages[1].Text != result.Reply {
		t.Error("stored assistant turn must match the returned reply")
	}

	if len(pointers.created) != 1 {
		t.Fatalf("want 1 session pointer, got %d", len(pointers.created))
	}
	p := pointers.created[0]
	if p.Kind != KindStudy || p.UserID != userID || p.FileID != result.SessionID {
		t.Errorf("pointer fields wrong: %+v", p)
	}
	if p.Title != "explain binary search" {
		t.Errorf("pointer title wrong: %q", p.Title)
	}
}

func TestTurnContinuesSession(t *testing.T) {
	provider := &fakeProvider{response: "It is O(log n)."}
	sessions := newFakeSessions()
	svc := NewService(provider, sessions, &fakeStorage{}, &fakePointers{})
	userID := uuid.New()

	first, err := svc.StudyTurn(context.Background(), userID, TurnRequest{Message: "explain binary search"})
	if err != nil {
		t.Fatalf("first turn failed: %v", err)
	}

	second, err := svc.StudyTurn(context.Background(), userID, TurnRequest{
		Message: "what is its complexity?", SessionID: first.SessionID,
	})
	if err != nil {
		t.Fatalf("second turn failed: %v", err)
	}
	if second.SessionID != first.SessionID {
		t.Error("continuing a session must keep its id")
	}

	doc := sessions.docs[first.SessionID]
	if len(doc.Messages) != 4 {
		t.Fatalf("want 4 messages after two turns, got %d", len(doc.Messages))
	}

	prompt := provider.prompts[1]
	if !strings.Contains(prompt, "explain binary search") {
		t.Error("second prompt must replay prior history")
	}
}

func TestTurnStaleSessionFailsHard(t *testing.T) {
	svc := NewService(&fakeProvider{response: "ok"}, newFakeSessions(), &fakeStorage{}, &fakePointers{})

	_, err := svc.StudyTurn(context.Background(), uuid.New(), TurnRequest{
		Message: "hello", SessionID: "sess-gone",
	})
	if err == nil {
		t.Fatal("appending to a missing session must fail the turn")
	}
}

func TestTurnMentorUsesOwnFolderAndLimit(t *testing.T) {
	long := strings.Repeat("advice\n", 40)
	provider := &fakeProvider{response: long}
	sessions := newFakeSessions()
	svc := NewService(provider, sessions, &fakeStorage{}, &fakePointers{})

	result, err := svc.MentorTurn(context.Background(), uuid.New(), TurnRequest{Message: "how do I plan revision?"})
	if err != nil {
		t.Fatalf("MentorTurn failed: %v", err)
	}

	if sessions.createdIn != "mentor-folder" {
		t.Errorf("mentor sessions must land in the mentor folder, got %q", sessions.createdIn)
	}
	if n := len(strings.Split(result.Reply, "\n")); n != mentorReplyLines {
		t.Errorf("mentor replies cap at %d lines, got %d", mentorReplyLines, n)
	}
}

func TestTurnPointerFailureIsSoft(t *testing.T) {
	svc := NewService(&fakeProvider{response: "ok"}, newFakeSessions(), &fakeStorage{}, &fakePointers{err: errors.New("db down")})

	result, err := svc.StudyTurn(context.Background(), uuid.New(), TurnRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("pointer failure must not fail the turn: %v", err)
	}
	if result.SessionID == "" {
		t.Error("session id must still be returned")
	}
}

func TestTurnValidation(t *testing.T) {
	svc := NewService(&fakeProvider{response: "ok"}, newFakeSessions(), &fakeStorage{}, &fakePointers{})

	if _, err := svc.StudyTurn(context.Background(), uuid.New(), TurnRequest{Message: "   "}); !errors.Is(err, ErrMessageRequired) {
		t.Errorf("want ErrMessageRequired, got %v", err)
	}

	failing := NewService(&fakeProvider{response: "ok"}, newFakeSessions(), &fakeStorage{fail: true}, &fakePointers{})
	if _, err := failing.StudyTurn(context.Background(), uuid.New(), TurnRequest{Message: "hello"}); err == nil {
		t.Error("new sessions must fail when the folder tree is unavailable")
	}
}
