package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/exam-ai-app/backend/internal/config"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Provider is the generative-text surface used by the question generator
// and both chat assistants.
type Provider interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewProvider builds a Gemini-backed provider. The API key comes from the
// environment (GEMINI_API_KEY), picked up by the genai client itself.
func NewProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini generation failed")
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

// StripFences removes a surrounding markdown code fence from model output.
// Gemini frequently wraps JSON answers in ```json blocks.
func StripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	return strings.Trim(strings.TrimSpace(clean), "`")
}
