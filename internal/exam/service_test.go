package exam

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/exam-ai-app/backend/internal/drive"
	"github.com/google/uuid"
)

type fakeStorage struct {
	failEnsure bool
	failFolder bool
	failUpload bool

	uploadedName string
	uploadedTo   string
	uploadedData []byte
}

func (f *fakeStorage) EnsureUserStructure(_ context.Context, _ string) (*drive.Folders, error) {
	if f.failEnsure {
		return nil, errors.New("drive unreachable")
	}
	return &drive.Folders{History: "history-folder"}, nil
}

func (f *fakeStorage) FindOrCreateFolder(_ context.Context, parentID, name string) (string, error) {
	if f.failFolder {
		return "", errors.New("folder lookup failed")
	}
	return parentID + "/" + name, nil
}

func (f *fakeStorage) Upload(_ context.Context, folderID, name, _ string, data []byte) (*drive.UploadedFile, error) {
	if f.failUpload {
		return nil, errors.New("storage outage")
	}
	f.uploadedTo = folderID
	f.uploadedName = name
	f.uploadedData = data
	return &drive.UploadedFile{ID: "file-1", URL: "https://drive.example/file-1"}, nil
}

type fakeRepo struct {
	created []*Attempt
	failing bool
}

func (f *fakeRepo) Create(a *Attempt) error {
	if f.failing {
		return errors.New("db down")
	}
	f.created = append(f.created, a)
	return nil
}

func (f *fakeRepo) ListByUser(_ uuid.UUID) ([]*Attempt, error) {
	return f.created, nil
}

func submitFixture() SubmitRequest {
	return SubmitRequest{
		Exam:       "GATE",
		Subject:    "Algorithms",
		Difficulty: "Medium",
		Questions: []Question{
			{ID: "q1", Type: TypeMCQ, Marks: 1, Question: "Pick one", CorrectAnswer: "B"},
			{ID: "q2", Type: TypeNAT, Marks: 2, Question: "Compute", CorrectAnswer: "42"},
			{ID: "q3", Type: TypeMSQ, Marks: 1, Question: "Pick all", CorrectAnswer: "A,C"},
		},
		Answers: map[string]string{"q1": "b", "q2": "42 ", "q3": "C,A"},
	}
}

func TestSubmitArchivesAttempt(t *testing.T) {
	storage := &fakeStorage{}
	repo := &fakeRepo{}
	svc := NewService(repo, storage)

	result, err := svc.Submit(context.Background(), uuid.New(), submitFixture())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if result.Warning != "" {
		t.Errorf("unexpected warning: %q", result.Warning)
	}
	if result.AttemptID == nil {
		t.Fatal("successful archive should return an attempt id")
	}
	if got := result.Score; got.Obtained != 4 || got.TotalMarks != 4 || got.CorrectCount != 3 {
		t.Errorf("want score {4 4 3}, got %+v", got)
	}

	if len(repo.created) != 1 {
		t.Fatalf("want 1 attempt pointer, got %d", len(repo.created))
	}
	attempt := repo.created[0]
	if attempt.FileID != "file-1" || attempt.Type != "exam" {
		t.Errorf("pointer fields wrong: %+v", attempt)
	}
	var persisted Score
	if err := json.Unmarshal(attempt.Score, &persisted); err != nil {
		t.Fatalf("score metadata not valid JSON: %v", err)
	}
	if persisted != result.Score {
		t.Errorf("persisted score %+v != returned score %+v", persisted, result.Score)
	}

	if storage.uploadedTo != "history-folder/exam" {
		t.Errorf("transcript should land in the exam subfolder, got %s", storage.uploadedTo)
	}
	transcript := string(storage.uploadedData)
	if !strings.Contains(transcript, "Score: 4 / 4") || !strings.Contains(transcript, "1. Pick one") {
		t.Errorf("transcript content wrong:\n%s", transcript)
	}
}

func TestSubmitUploadFailureIsSoft(t *testing.T) {
	storage := &fakeStorage{failUpload: true}
	repo := &fakeRepo{}
	svc := NewService(repo, storage)

	result, err := svc.Submit(context.Background(), uuid.New(), submitFixture())
	if err != nil {
		t.Fatalf("storage outage must not fail the submit: %v", err)
	}

	if result.AttemptID != nil {
		t.Error("failed archive must leave the attempt id null")
	}
	if result.Warning == "" {
		t.Error("failed archive must surface a warning")
	}
	if got := result.Score; got.Obtained != 4 || got.CorrectCount != 3 {
		t.Errorf("score must be computed regardless of storage, got %+v", got)
	}
	if len(result.Details) != 3 {
		t.Errorf("details must be returned regardless of storage, got %d", len(result.Details))
	}
	if len(repo.created) != 0 {
		t.Error("no pointer may be written when the upload failed")
	}
}

func TestSubmitFolderFallback(t *testing.T) {
	storage := &fakeStorage{failFolder: true}
	repo := &fakeRepo{}
	svc := NewService(repo, storage)

	result, err := svc.Submit(context.Background(), uuid.New(), submitFixture())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.AttemptID == nil {
		t.Fatal("fallback upload should still archive the attempt")
	}
	if storage.uploadedTo != "history-folder" {
		t.Errorf("failed subfolder resolution should fall back to the history folder, got %s", storage.uploadedTo)
	}
}

func TestSubmitPointerWriteFailureIsSoft(t *testing.T) {
	storage := &fakeStorage{}
	repo := &fakeRepo{failing: true}
	svc := NewService(repo, storage)

	result, err := svc.Submit(context.Background(), uuid.New(), submitFixture())
	if err != nil {
		t.Fatalf("pointer write failure must not fail the submit: %v", err)
	}
	if result.AttemptID != nil {
		t.Error("attempt id must be null when the pointer write failed")
	}
	if result.Warning == "" {
		t.Error("pointer write failure must surface a warning")
	}
}
