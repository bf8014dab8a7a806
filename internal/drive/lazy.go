package drive

import (
	"context"
	"sync"
)

// Lazy defers Drive authentication to first use, so the server can boot
// before the OAuth consent flow has been completed. Once a client is
// built it is reused.
type Lazy struct {
	mu     sync.Mutex
	client *Client
}

func NewLazy() *Lazy {
	return &Lazy{}
}

func (l *Lazy) get(ctx context.Context) (*Client, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.client != nil {
		return l.client, nil
	}
	c, err := NewClient(ctx)
	if err != nil {
		return nil, err
	}
	l.client = c
	return c, nil
}

func (l *Lazy) Upload(ctx context.Context, folderID, name, mimeType string, data []byte) (*UploadedFile, error) {
	c, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return c.Upload(ctx, folderID, name, mimeType, data)
}

func (l *Lazy) Download(ctx context.Context, fileID string) ([]byte, error) {
	c, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return c.Download(ctx, fileID)
}

func (l *Lazy) Update(ctx context.Context, fileID, mimeType string, data []byte) error {
	c, err := l.get(ctx)
	if err != nil {
		return err
	}
	return c.Update(ctx, fileID, mimeType, data)
}

func (l *Lazy) List(ctx context.Context, folderID string) ([]FileInfo, error) {
	c, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return c.List(ctx, folderID)
}

func (l *Lazy) Delete(ctx context.Context, fileID string) error {
	c, err := l.get(ctx)
	if err != nil {
		return err
	}
	return c.Delete(ctx, fileID)
}

func (l *Lazy) FindOrCreateFolder(ctx context.Context, parentID, name string) (string, error) {
	c, err := l.get(ctx)
	if err != nil {
		return "", err
	}
	return c.FindOrCreateFolder(ctx, parentID, name)
}

func (l *Lazy) EnsureUserStructure(ctx context.Context, uid string) (*Folders, error) {
	c, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return c.EnsureUserStructure(ctx, uid)
}

func (l *Lazy) QuestionsFolder(ctx context.Context) (string, error) {
	c, err := l.get(ctx)
	if err != nil {
		return "", err
	}
	return c.QuestionsFolderID, nil
}
