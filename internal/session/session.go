package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/exam-ai-app/backend/internal/config"
	"github.com/exam-ai-app/backend/internal/drive"
)

const jsonMimeType = "application/json"

// Message is one chat turn inside a session document.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
	Ts   int64  `json:"ts"`
}

// Document is the JSON session file kept in Drive. The file id doubles as
// the session key handed back to the client.
type Document struct {
	Type      string    `json:"type"`
	Exam      string    `json:"exam,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
	Messages  []Message `json:"messages"`
}

// FileStore is the slice of the Drive surface the protocol needs.
type FileStore interface {
	Upload(ctx context.Context, folderID, name, mimeType string, data []byte) (*drive.UploadedFile, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
	Update(ctx context.Context, fileID, mimeType string, data []byte) error
}

// Store implements the create/read/append lifecycle over a FileStore.
//
// Appends are read-modify-write full overwrites; Drive has no append
// primitive. Two concurrent appends to the same file id race and the last
// writer wins.
type Store struct {
	files FileStore
}

func NewStore(files FileStore) *Store {
	return &Store{files: files}
}

// NewDocument builds a session document seeded with a single message.
func NewDocument(kind, exam, subject string, seed Message) Document {
	now := time.Now().UTC()
	if seed.Ts == 0 {
		seed.Ts = now.UnixMilli()
	}
	iso := now.Format(time.RFC3339)
	return Document{
		Type:      kind,
		Exam:      exam,
		Subject:   subject,
		CreatedAt: iso,
		UpdatedAt: iso,
		Messages:  []Message{seed},
	}
}

// Create writes a new session file and returns its id, the session key for
// all future turns.
func (s *Store) Create(ctx context.Context, folderID, fileName string, doc Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}

	uploaded, err := s.files.Upload(ctx, folderID, fileName, jsonMimeType, data)
	if err != nil {
		return "", fmt.Errorf("create session file: %w", err)
	}
	return uploaded.ID, nil
}

// ReadSafe fetches a session document by id. Any failure (missing file,
// transport error, malformed JSON) yields an empty document: callers treat
// "missing or corrupt" the same as "no history yet".
func (s *Store) ReadSafe(ctx context.Context, fileID string) Document {
	log := config.WithContext(ctx)
	empty := Document{Messages: []Message{}}

	raw, err := s.files.Download(ctx, fileID)
	if err != nil {
		log.WithError(err).Warnf("Session read failed for %s, returning empty history", fileID)
		return empty
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return empty
	}

	var doc Document
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		log.WithError(err).Warnf("Session parse failed for %s, returning empty history", fileID)
		return empty
	}
	if doc.Messages == nil {
		doc.Messages = []Message{}
	}
	return doc
}

// Append adds one message to an existing session. Unlike ReadSafe this
// fails hard when the file cannot be fetched or parsed: appending to a
// nonexistent session is a logic error upstream and must not fabricate a
// new document.
func (s *Store) Append(ctx context.Context, fileID string, msg Message) error {
	raw, err := s.files.Download(ctx, fileID)
	if err != nil {
		return fmt.Errorf("session %s not readable: %w", fileID, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("session %s not parseable: %w", fileID, err)
	}

	if msg.Ts == 0 {
		msg.Ts = time.Now().UnixMilli()
	}
	doc.Messages = append(doc.Messages, msg)
	doc.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.files.Update(ctx, fileID, jsonMimeType, data); err != nil {
		return fmt.Errorf("write back session %s: %w", fileID, err)
	}
	return nil
}
