package superadmin

import (
	"context"
	"errors"
	"strings"

	"github.com/exam-ai-app/backend/internal/audit"
	"github.com/exam-ai-app/backend/internal/user"
	"github.com/google/uuid"
)

var (
	ErrFieldsRequired = errors.New("uid or email required")
	ErrInvalidID      = errors.New("invalid id format")
)

type CreateAdminRequest struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type Service struct {
	users    user.UserRepository
	recorder audit.Recorder
}

func NewService(users user.UserRepository, recorder audit.Recorder) *Service {
	return &Service{users: users, recorder: recorder}
}

// CreateAdmin promotes an existing account, or provisions a fresh admin
// record by email. A provisioned account has no password; the admin
// signs in with Google on the same address.
func (s *Service) CreateAdmin(ctx context.Context, actorUID string, req CreateAdminRequest) (*user.User, error) {
	var u *user.User
	var err error

	switch {
	case req.UID != "":
		id, parseErr := uuid.Parse(req.UID)
		if parseErr != nil {
			return nil, ErrInvalidID
		}
		u, err = s.users.FindByID(id)
	case req.Email != "":
		u, err = s.users.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	default:
		return nil, ErrFieldsRequired
	}

	if errors.Is(err, user.ErrUserNotFound) && req.Email != "" {
		u = &user.User{
			ID:           uuid.New(),
			FullName:     strings.TrimSpace(req.FullName),
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			Role:         user.RoleAdmin,
			AuthProvider: user.ProviderGoogle,
		}
		if err := s.users.Create(u); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		if err := s.users.SetRole(u.ID, user.RoleAdmin); err != nil {
			return nil, err
		}
		u.Role = user.RoleAdmin
	}

	audit.Try(ctx, s.recorder, audit.Entry{
		ActorUID: actorUID,
		Action:   "create_admin",
		Target:   u.ID.String(),
		Details:  map[string]interface{}{"email": u.Email, "fullName": u.FullName},
	})
	return u, nil
}

// RevokeAdmin demotes an admin back to a regular user.
func (s *Service) RevokeAdmin(ctx context.Context, actorUID, uid string) error {
	id, err := uuid.Parse(uid)
	if err != nil {
		return ErrInvalidID
	}
	if err := s.users.SetRole(id, user.RoleUser); err != nil {
		return err
	}

	audit.Try(ctx, s.recorder, audit.Entry{
		ActorUID: actorUID,
		Action:   "revoke_admin",
		Target:   uid,
	})
	return nil
}
