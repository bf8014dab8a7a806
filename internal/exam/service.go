package exam

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/exam-ai-app/backend/internal/config"
	"github.com/exam-ai-app/backend/internal/drive"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const uploadWarning = "Drive upload failed - attempt not stored in Drive"

// Storage is the slice of the Drive surface attempt archiving needs.
type Storage interface {
	EnsureUserStructure(ctx context.Context, uid string) (*drive.Folders, error)
	FindOrCreateFolder(ctx context.Context, parentID, name string) (string, error)
	Upload(ctx context.Context, folderID, name, mimeType string, data []byte) (*drive.UploadedFile, error)
}

type SubmitRequest struct {
	Exam       string            `json:"exam"`
	Subject    string            `json:"subject"`
	Difficulty string            `json:"difficulty"`
	Questions  []Question        `json:"questions"`
	Answers    map[string]string `json:"answers"`
}

type SubmitResult struct {
	AttemptID *string
	Score     Score
	Details   []GradingResult
	Warning   string
}

type Service interface {
	Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (*SubmitResult, error)
	History(ctx context.Context, userID uuid.UUID) ([]*Attempt, error)
}

type service struct {
	repo    AttemptRepository
	storage Storage
}

func NewService(repo AttemptRepository, storage Storage) Service {
	return &service{repo: repo, storage: storage}
}

// Submit grades the attempt, archives a transcript to Drive and records an
// attempt pointer. Archiving is best-effort: any storage failure is
// downgraded to a warning and the computed score is returned regardless.
func (s *service) Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (*SubmitResult, error) {
	log := config.WithContext(ctx)

	score, details := ScoreAttempt(req.Questions, req.Answers)

	meta := AttemptMeta{
		Exam:       req.Exam,
		Subject:    req.Subject,
		Difficulty: req.Difficulty,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	transcript := Transcript(meta, score, details)

	examName, subjectName := req.Exam, req.Subject
	if examName == "" {
		examName = "exam"
	}
	if subjectName == "" {
		subjectName = "subject"
	}
	fileName := fmt.Sprintf("%s_%s_attempt_%d.txt", examName, subjectName, time.Now().UnixMilli())

	result := &SubmitResult{Score: score, Details: details}

	attemptID, err := s.archive(ctx, userID, fileName, transcript, score)
	if err != nil {
		log.WithError(err).Warn("Failed to archive attempt transcript to Drive")
		result.Warning = uploadWarning
		return result, nil
	}

	result.AttemptID = &attemptID
	return result, nil
}

func (s *service) archive(ctx context.Context, userID uuid.UUID, fileName, transcript string, score Score) (string, error) {
	log := config.WithContext(ctx)

	folders, err := s.storage.EnsureUserStructure(ctx, userID.String())
	if err != nil {
		return "", err
	}

	// Transcripts live under history/exam; fall back to the history folder
	// itself when the subfolder cannot be resolved.
	examFolderID, err := s.storage.FindOrCreateFolder(ctx, folders.History, "exam")
	if err != nil {
		log.WithError(err).Warn("Could not ensure exam folder, falling back to history folder")
		examFolderID = folders.History
	}

	uploaded, err := s.storage.Upload(ctx, examFolderID, fileName, "text/plain", []byte(transcript))
	if err != nil {
		return "", err
	}

	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return "", err
	}

	attempt := &Attempt{
		ID:       uuid.New(),
		UserID:   userID,
		FileID:   uploaded.ID,
		FileURL:  uploaded.URL,
		FileName: fileName,
		Type:     "exam",
		Score:    datatypes.JSON(scoreJSON),
	}
	if err := s.repo.Create(attempt); err != nil {
		return "", fmt.Errorf("attempt pointer write: %w", err)
	}

	return attempt.ID.String(), nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID) ([]*Attempt, error) {
	return s.repo.ListByUser(userID)
}
