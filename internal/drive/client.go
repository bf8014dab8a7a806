package drive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/exam-ai-app/backend/internal/config"
	"golang.org/x/oauth2"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var (
	ErrMissingToken = errors.New("drive token not found, authorize via /auth/google first")
	ErrMissingRoot  = errors.New("drive root folder is not accessible")
)

// Client wraps the Drive v3 service together with the application-level
// folder ids everything else hangs off of.
type Client struct {
	svc               *gdrive.Service
	RootFolderID      string
	QuestionsFolderID string
}

// OAuthConfigFromEnv builds the oauth2 config used both by the consent
// flow and by NewClient.
func OAuthConfigFromEnv() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes:       []string{gdrive.DriveFileScope},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
	}
}

// NewClient authenticates against Drive using the token captured by the
// OAuth callback. The token file is AES-encrypted at rest.
func NewClient(ctx context.Context) (*Client, error) {
	log := config.WithContext(ctx)

	oauthConfig := OAuthConfigFromEnv()
	token, err := loadToken()
	if err != nil {
		log.WithError(err).Error("Failed to load Drive token")
		return nil, err
	}

	tokenSource := oauthConfig.TokenSource(ctx, token)
	httpClient := oauth2.NewClient(ctx, tokenSource)

	svc, err := gdrive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		log.WithError(err).Error("Failed to create Drive service client")
		return nil, fmt.Errorf("drive client: %w", err)
	}

	return &Client{
		svc:               svc,
		RootFolderID:      os.Getenv("DRIVE_ROOT_FOLDER_ID"),
		QuestionsFolderID: os.Getenv("DRIVE_QUESTIONS_FOLDER_ID"),
	}, nil
}

func tokenPath() string {
	if p := os.Getenv("DRIVE_TOKEN_FILE"); p != "" {
		return p
	}
	return "token.enc"
}

func loadToken() (*oauth2.Token, error) {
	raw, err := os.ReadFile(tokenPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissingToken
		}
		return nil, err
	}

	decrypted, err := config.Decrypt(string(raw))
	if err != nil {
		return nil, fmt.Errorf("decrypt drive token: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(decrypted), &token); err != nil {
		return nil, fmt.Errorf("parse drive token: %w", err)
	}
	return &token, nil
}

func saveToken(token *oauth2.Token) error {
	raw, err := json.Marshal(token)
	if err != nil {
		return err
	}
	encrypted, err := config.Encrypt(string(raw))
	if err != nil {
		return err
	}
	return os.WriteFile(tokenPath(), []byte(encrypted), 0o600)
}
