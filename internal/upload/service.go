package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/exam-ai-app/backend/internal/audit"
	"github.com/exam-ai-app/backend/internal/config"
	"github.com/exam-ai-app/backend/internal/drive"
	"github.com/exam-ai-app/backend/internal/user"
	"github.com/google/uuid"
)

var (
	ErrNoFile        = errors.New("no file uploaded")
	ErrMissingFileID = errors.New("missing file id")
)

// Storage is the Drive surface uploads need: the per-user folder tree
// plus raw file operations.
type Storage interface {
	EnsureUserStructure(ctx context.Context, uid string) (*drive.Folders, error)
	Upload(ctx context.Context, folderID, name, mimeType string, data []byte) (*drive.UploadedFile, error)
	List(ctx context.Context, folderID string) ([]drive.FileInfo, error)
	Delete(ctx context.Context, fileID string) error
}

type Incoming struct {
	Filename string
	MimeType string
	Size     int64
	Data     []byte
}

type Result struct {
	FileID string `json:"fileId"`
	URL    string `json:"url"`
}

type Service struct {
	storage  Storage
	repo     UploadRepository
	users    user.UserRepository
	recorder audit.Recorder
}

func NewService(storage Storage, repo UploadRepository, users user.UserRepository, recorder audit.Recorder) *Service {
	return &Service{storage: storage, repo: repo, users: users, recorder: recorder}
}

// StoreFile puts a file in the user's uploads folder and records its
// metadata. Unlike exam archiving, a Drive failure here fails the call:
// the upload is the whole point of the request.
func (s *Service) StoreFile(ctx context.Context, userID uuid.UUID, in Incoming) (*Result, error) {
	if len(in.Data) == 0 {
		return nil, ErrNoFile
	}

	folders, err := s.storage.EnsureUserStructure(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	if folders.Uploads == "" {
		return nil, errors.New("uploads folder missing")
	}

	uploaded, err := s.storage.Upload(ctx, folders.Uploads, in.Filename, in.MimeType, in.Data)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(&Upload{
		OwnerID:  userID,
		FileID:   uploaded.ID,
		Filename: in.Filename,
		MimeType: in.MimeType,
		Size:     in.Size,
		URL:      uploaded.URL,
	}); err != nil {
		return nil, fmt.Errorf("record upload: %w", err)
	}

	audit.Try(ctx, s.recorder, audit.Entry{
		ActorUID: userID.String(),
		Action:   "upload_file",
		Target:   uploaded.URL,
		Details:  map[string]interface{}{"name": in.Filename, "url": uploaded.URL},
	})
	return &Result{FileID: uploaded.ID, URL: uploaded.URL}, nil
}

// StoreProfileImage replaces the user's profile picture: the profile
// folder holds at most one file, so existing files are cleared first.
func (s *Service) StoreProfileImage(ctx context.Context, userID uuid.UUID, in Incoming) (*Result, error) {
	return s.replaceImage(ctx, userID, in, func(f *drive.Folders) string { return f.Profile }, func(u *user.User, url string) {
		u.PhotoURL = url
	})
}

// StoreBackgroundImage replaces the user's profile background the same
// way.
func (s *Service) StoreBackgroundImage(ctx context.Context, userID uuid.UUID, in Incoming) (*Result, error) {
	return s.replaceImage(ctx, userID, in, func(f *drive.Folders) string { return f.Background }, func(u *user.User, url string) {
		u.BackgroundURL = url
	})
}

func (s *Service) replaceImage(ctx context.Context, userID uuid.UUID, in Incoming, pick func(*drive.Folders) string, assign func(*user.User, string)) (*Result, error) {
	if len(in.Data) == 0 {
		return nil, ErrNoFile
	}

	folders, err := s.storage.EnsureUserStructure(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	folderID := pick(folders)
	if folderID == "" {
		return nil, errors.New("image folder missing")
	}

	existing, err := s.storage.List(ctx, folderID)
	if err != nil {
		return nil, err
	}
	for _, f := range existing {
		if err := s.storage.Delete(ctx, f.ID); err != nil {
			return nil, err
		}
	}

	uploaded, err := s.storage.Upload(ctx, folderID, in.Filename, in.MimeType, in.Data)
	if err != nil {
		return nil, err
	}

	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	assign(u, uploaded.URL)
	if err := s.users.Update(u); err != nil {
		return nil, err
	}

	return &Result{FileID: uploaded.ID, URL: uploaded.URL}, nil
}

// DeleteFile removes a file from Drive and drops its metadata row. The
// metadata cleanup is best-effort once the Drive delete went through.
func (s *Service) DeleteFile(ctx context.Context, userID uuid.UUID, fileID string) error {
	if fileID == "" {
		return ErrMissingFileID
	}

	if err := s.storage.Delete(ctx, fileID); err != nil {
		return err
	}
	if err := s.repo.DeleteByFileID(userID, fileID); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Upload metadata cleanup failed")
	}

	audit.Try(ctx, s.recorder, audit.Entry{
		ActorUID: userID.String(),
		Action:   "delete_file",
		Target:   fileID,
		Details:  map[string]interface{}{"reason": "user_deleted_file"},
	})
	return nil
}
