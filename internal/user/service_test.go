package user

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/exam-ai-app/backend/internal/auth"
	"github.com/exam-ai-app/backend/internal/drive"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	auth.Init()
	os.Exit(m.Run())
}

type memoryRepo struct {
	byEmail map[string]*User
	failing bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byEmail: map[string]*User{}}
}

func (m *memoryRepo) Create(u *User) error {
	if m.failing {
		return errors.New("db down")
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryRepo) FindByID(id uuid.UUID) (*User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *memoryRepo) FindByEmail(email string) (*User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (m *memoryRepo) Update(u *User) error {
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryRepo) List() ([]*User, error) {
	var users []*User
	for _, u := range m.byEmail {
		users = append(users, u)
	}
	return users, nil
}

func (m *memoryRepo) SetRole(id uuid.UUID, role string) error {
	u, err := m.FindByID(id)
	if err != nil {
		return err
	}
	u.Role = role
	return nil
}

type fakeStorage struct {
	fail  bool
	calls int
}

func (f *fakeStorage) EnsureUserStructure(_ context.Context, uid string) (*drive.Folders, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("drive unreachable")
	}
	return &drive.Folders{User: "user-folder-" + uid}, nil
}

type fakeVerifier struct {
	identity *GoogleIdentity
	err      error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*GoogleIdentity, error) {
	return f.identity, f.err
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemoryRepo()
	storage := &fakeStorage{}
	svc := NewService(repo, storage, nil)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Asha", Email: "  Asha@Example.COM ", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("registration must issue a token")
	}
	if resp.User.Email != "asha@example.com" {
		t.Errorf("email must normalize to lower case, got %q", resp.User.Email)
	}
	if resp.Warning != "" {
		t.Errorf("unexpected warning: %q", resp.Warning)
	}

	claims, err := auth.ValidateJWT(resp.Token)
	if err != nil {
		t.Fatalf("issued token must validate: %v", err)
	}
	if claims.UserID != resp.User.UID || claims.Role != RoleUser {
		t.Errorf("claims wrong: %+v", claims)
	}

	stored := repo.byEmail["asha@example.com"]
	if stored.PasswordHash == "secret1" {
		t.Fatal("password must not be stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Errorf("stored hash must match the password: %v", err)
	}
	if stored.DriveRootID != "user-folder-"+stored.ID.String() {
		t.Errorf("drive root pointer not recorded: %q", stored.DriveRootID)
	}

	if _, err := svc.Login(context.Background(), LoginRequest{Email: "asha@example.com", Password: "secret1"}); err != nil {
		t.Errorf("Login failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginRequest{Email: "asha@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password must report ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "secret1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email must report ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil, nil)

	if _, err := svc.Register(context.Background(), RegisterRequest{Password: "secret1"}); !errors.Is(err, ErrEmailRequired) {
		t.Errorf("want ErrEmailRequired, got %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterRequest{Email: "a@b.c", Password: "short"}); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("want ErrWeakPassword, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil, nil)
	req := RegisterRequest{Email: "a@b.c", Password: "secret1"}

	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("want ErrEmailTaken, got %v", err)
	}
}

func TestRegisterDriveFailureIsSoft(t *testing.T) {
	svc := NewService(newMemoryRepo(), &fakeStorage{fail: true}, nil)

	resp, err := svc.Register(context.Background(), RegisterRequest{Email: "a@b.c", Password: "secret1"})
	if err != nil {
		t.Fatalf("drive outage must not block registration: %v", err)
	}
	if resp.Warning == "" {
		t.Error("drive outage must surface a warning")
	}
	if resp.Token == "" {
		t.Error("token must still be issued")
	}
}

func TestGoogleLoginCreatesAccount(t *testing.T) {
	repo := newMemoryRepo()
	verifier := &fakeVerifier{identity: &GoogleIdentity{Subject: "g-123", Email: "Asha@Example.com"}}
	svc := NewService(repo, nil, verifier)

	resp, err := svc.GoogleLogin(context.Background(), GoogleLoginRequest{IDToken: "tok"})
	if err != nil {
		t.Fatalf("GoogleLogin failed: %v", err)
	}
	if resp.User.AuthProvider != ProviderGoogle {
		t.Errorf("want google provider, got %q", resp.User.AuthProvider)
	}

	u := repo.byEmail["asha@example.com"]
	if u == nil {
		t.Fatal("first google login must create the account")
	}
	if u.PasswordHash != "" {
		t.Error("google accounts must have no password hash")
	}

	again, err := svc.GoogleLogin(context.Background(), GoogleLoginRequest{IDToken: "tok"})
	if err != nil {
		t.Fatalf("second GoogleLogin failed: %v", err)
	}
	if again.User.UID != resp.User.UID {
		t.Error("repeat google login must reuse the existing account")
	}

	if _, err := svc.Login(context.Background(), LoginRequest{Email: "asha@example.com", Password: "anything"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("password login against a google account must fail, got %v", err)
	}
}

func TestGoogleLoginRejectsBadToken(t *testing.T) {
	verifier := &fakeVerifier{err: ErrInvalidGoogleToken}
	svc := NewService(newMemoryRepo(), nil, verifier)

	if _, err := svc.GoogleLogin(context.Background(), GoogleLoginRequest{IDToken: "bad"}); !errors.Is(err, ErrInvalidGoogleToken) {
		t.Errorf("want ErrInvalidGoogleToken, got %v", err)
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil)

	resp, err := svc.Register(context.Background(), RegisterRequest{FullName: "Asha", Email: "a@b.c", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	userID := uuid.MustParse(resp.User.UID)

	exam := "GATE"
	phone := " 555-0101 "
	profile, err := svc.Update(context.Background(), userID, UpdateRequest{PreferredExam: &exam, Phone: &phone})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if profile.PreferredExam != "GATE" || profile.Phone != "555-0101" {
		t.Errorf("provided fields must apply trimmed, got %+v", profile)
	}
	if profile.FullName != "Asha" {
		t.Errorf("absent fields must stay untouched, got %q", profile.FullName)
	}
}
