package drive

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/exam-ai-app/backend/internal/config"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const folderMimeType = "application/vnd.google-apps.folder"

// UploadedFile is the result of a successful upload.
type UploadedFile struct {
	ID  string
	URL string
}

// FileInfo is a lightweight listing entry.
type FileInfo struct {
	ID       string
	Name     string
	MimeType string
}

// Upload writes data as a new file under folderID and makes it link-readable.
func (c *Client) Upload(ctx context.Context, folderID, name, mimeType string, data []byte) (*UploadedFile, error) {
	log := config.WithContext(ctx)

	created, err := c.svc.Files.Create(&gdrive.File{
		Name:    name,
		Parents: []string{folderID},
	}).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		log.WithError(err).Errorf("Drive upload failed for %s", name)
		return nil, fmt.Errorf("drive upload: %w", err)
	}

	_, err = c.svc.Permissions.Create(created.Id, &gdrive.Permission{
		Role: "reader",
		Type: "anyone",
	}).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Warnf("Failed to set public permission on %s", created.Id)
	}

	return &UploadedFile{
		ID:  created.Id,
		URL: fmt.Sprintf("https://drive.google.com/uc?export=view&id=%s", created.Id),
	}, nil
}

func (c *Client) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := c.svc.Files.Get(fileID).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("drive download: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("drive download read: %w", err)
	}
	return data, nil
}

// Update overwrites the full content of an existing file.
func (c *Client) Update(ctx context.Context, fileID, mimeType string, data []byte) error {
	_, err := c.svc.Files.Update(fileID, &gdrive.File{}).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("drive update: %w", err)
	}
	return nil
}

func (c *Client) List(ctx context.Context, folderID string) ([]FileInfo, error) {
	res, err := c.svc.Files.List().
		Q(fmt.Sprintf("'%s' in parents and trashed=false", folderID)).
		Fields("files(id, name, mimeType)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("drive list: %w", err)
	}

	files := make([]FileInfo, 0, len(res.Files))
	for _, f := range res.Files {
		files = append(files, FileInfo{ID: f.Id, Name: f.Name, MimeType: f.MimeType})
	}
	return files, nil
}

func (c *Client) Delete(ctx context.Context, fileID string) error {
	err := c.svc.Files.Delete(fileID).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == 404 {
			return nil
		}
		return fmt.Errorf("drive delete: %w", err)
	}
	return nil
}

// FindOrCreateFolder resolves a folder by name under parentID, creating it
// when absent.
func (c *Client) FindOrCreateFolder(ctx context.Context, parentID, name string) (string, error) {
	log := config.WithContext(ctx)

	res, err := c.svc.Files.List().
		Q(fmt.Sprintf("'%s' in parents and name='%s' and mimeType='%s' and trashed=false", parentID, name, folderMimeType)).
		Fields("files(id, name)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("folder lookup %q: %w", name, err)
	}
	if len(res.Files) > 0 {
		return res.Files[0].Id, nil
	}

	folder, err := c.svc.Files.Create(&gdrive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}).Fields("id").SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("folder create %q: %w", name, err)
	}

	log.Infof("Created Drive folder %q (%s)", name, folder.Id)
	return folder.Id, nil
}
