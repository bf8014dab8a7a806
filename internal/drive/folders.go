package drive

import (
	"context"

	"github.com/exam-ai-app/backend/internal/config"
)

// Folders holds the per-user Drive folder ids provisioned by
// EnsureUserStructure.
type Folders struct {
	Root       string `json:"root"`
	Users      string `json:"users"`
	User       string `json:"user"`
	Profile    string `json:"profile"`
	Background string `json:"background"`
	Uploads    string `json:"uploads"`
	History    string `json:"history"`
	Mentor     string `json:"mentor"`
	Study      string `json:"study"`
	AISessions string `json:"aiSessions"`
}

// EnsureUserStructure provisions the full per-user folder tree:
//
//	<root>/users/<uid>/{profile,background,uploads,history/{mentor,study},ai-sessions}
//
// Every step is idempotent; existing folders are reused.
func (c *Client) EnsureUserStructure(ctx context.Context, uid string) (*Folders, error) {
	log := config.WithContext(ctx)
	log.Infof("Ensuring Drive folder structure for user %s", uid)

	if _, err := c.svc.Files.Get(c.RootFolderID).Fields("id", "name").SupportsAllDrives(true).Context(ctx).Do(); err != nil {
		log.WithError(err).Error("Drive root folder inaccessible")
		return nil, ErrMissingRoot
	}

	usersID, err := c.FindOrCreateFolder(ctx, c.RootFolderID, "users")
	if err != nil {
		return nil, err
	}
	userID, err := c.FindOrCreateFolder(ctx, usersID, uid)
	if err != nil {
		return nil, err
	}

	profile, err := c.FindOrCreateFolder(ctx, userID, "profile")
	if err != nil {
		return nil, err
	}
	background, err := c.FindOrCreateFolder(ctx, userID, "background")
	if err != nil {
		return nil, err
	}
	uploads, err := c.FindOrCreateFolder(ctx, userID, "uploads")
	if err != nil {
		return nil, err
	}
	history, err := c.FindOrCreateFolder(ctx, userID, "history")
	if err != nil {
		return nil, err
	}
	mentor, err := c.FindOrCreateFolder(ctx, history, "mentor")
	if err != nil {
		return nil, err
	}
	study, err := c.FindOrCreateFolder(ctx, history, "study")
	if err != nil {
		return nil, err
	}
	aiSessions, err := c.FindOrCreateFolder(ctx, userID, "ai-sessions")
	if err != nil {
		return nil, err
	}

	return &Folders{
		Root:       c.RootFolderID,
		Users:      usersID,
		User:       userID,
		Profile:    profile,
		Background: background,
		Uploads:    uploads,
		History:    history,
		Mentor:     mentor,
		Study:      study,
		AISessions: aiSessions,
	}, nil
}
