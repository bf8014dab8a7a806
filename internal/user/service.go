package user

import (
	"context"
	"errors"
	"strings"

	"github.com/exam-ai-app/backend/internal/auth"
	"github.com/exam-ai-app/backend/internal/config"
	"github.com/exam-ai-app/backend/internal/drive"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidID          = errors.New("invalid id format")
)

const driveWarning = "Drive setup failed - folders will be created on first use"

// Storage is the slice of Drive the account flow needs: making sure the
// per-user folder tree exists. Failures never block sign-in.
type Storage interface {
	EnsureUserStructure(ctx context.Context, uid string) (*drive.Folders, error)
}

type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	GoogleLogin(ctx context.Context, req GoogleLoginRequest) (*AuthResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Get(ctx context.Context, id string) (*Profile, error)
}

type userService struct {
	repo     UserRepository
	storage  Storage
	verifier GoogleVerifier
}

func NewService(repo UserRepository, storage Storage, verifier GoogleVerifier) UserService {
	return &userService{repo: repo, storage: storage, verifier: verifier}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(req.Password) < 6 {
		return nil, ErrWeakPassword
	}

	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         RoleUser,
		AuthProvider: ProviderPassword,
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}

	return s.authResponse(ctx, u)
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, err := s.repo.FindByEmail(email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(ctx, u)
}

// GoogleLogin signs in with a verified Google ID token, creating the
// account on first sight of the email.
func (s *userService) GoogleLogin(ctx context.Context, req GoogleLoginRequest) (*AuthResponse, error) {
	identity, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(identity.Email)
	u, err := s.repo.FindByEmail(email)
	if errors.Is(err, ErrUserNotFound) {
		u = &User{
			ID:           uuid.New(),
			FullName:     strings.Split(email, "@")[0],
			Email:        email,
			Role:         RoleUser,
			AuthProvider: ProviderGoogle,
		}
		if err := s.repo.Create(u); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return s.authResponse(ctx, u)
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	p := toProfile(u)
	return &p, nil
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*Profile, error) {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	apply(&u.FullName, req.FullName)
	apply(&u.Phone, req.Phone)
	apply(&u.Description, req.Description)
	apply(&u.Location, req.Location)
	apply(&u.Achievements, req.Achievements)
	apply(&u.PreferredExam, req.PreferredExam)
	apply(&u.PreferredSubject, req.PreferredSubject)

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	p := toProfile(u)
	return &p, nil
}

func (s *userService) List(ctx context.Context) ([]Profile, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	profiles := make([]Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, toProfile(u))
	}
	return profiles, nil
}

func (s *userService) Get(ctx context.Context, id string) (*Profile, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.Me(ctx, parsed)
}

// authResponse issues a token and ensures the user's Drive folder tree.
// Drive problems degrade to a warning so sign-in never depends on
// external storage being reachable.
func (s *userService) authResponse(ctx context.Context, u *User) (*AuthResponse, error) {
	token, err := auth.GenerateJWT(auth.UserClaims{
		UserID:   u.ID.String(),
		Email:    u.Email,
		FullName: u.FullName,
		Picture:  u.PhotoURL,
		Role:     u.Role,
	}, auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	resp := &AuthResponse{OK: true, Token: token, User: toProfile(u)}
	if warning := s.ensureDrive(ctx, u); warning != "" {
		resp.Warning = warning
	}
	return resp, nil
}

func (s *userService) ensureDrive(ctx context.Context, u *User) string {
	if s.storage == nil {
		return ""
	}
	folders, err := s.storage.EnsureUserStructure(ctx, u.ID.String())
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Drive folder setup failed during sign-in")
		return driveWarning
	}
	if u.DriveRootID != folders.User {
		u.DriveRootID = folders.User
		if err := s.repo.Update(u); err != nil {
			config.WithContext(ctx).WithError(err).Warn("Drive root pointer update failed")
		}
	}
	return ""
}
