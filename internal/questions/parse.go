package questions

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/exam-ai-app/backend/internal/exam"
	"github.com/exam-ai-app/backend/internal/gemini"
)

// ErrBadModelOutput marks a model response that is not the strict JSON
// array the prompt demands. Callers surface it as a retryable failure
// instead of salvaging fragments out of free text.
var ErrBadModelOutput = errors.New("model output is not a valid question array")

// rawQuestion tolerates the two option shapes models emit: a letter-keyed
// object or a bare array. Everything else about the payload is strict.
type rawQuestion struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Marks         int             `json:"marks"`
	Question      string          `json:"question"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer string          `json:"correctAnswer"`
	Explanation   string          `json:"explanation"`
}

// ParseQuestions turns a raw model response into graded-ready questions.
func ParseQuestions(raw string) ([]exam.Question, error) {
	clean := gemini.StripFences(raw)

	var items []rawQuestion
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadModelOutput, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty array", ErrBadModelOutput)
	}

	seed := time.Now().UnixMilli()
	questions := make([]exam.Question, 0, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.Question) == "" {
			return nil, fmt.Errorf("%w: item %d has no question text", ErrBadModelOutput, i)
		}

		q := exam.Question{
			ID:            item.ID,
			Type:          strings.ToUpper(strings.TrimSpace(item.Type)),
			Marks:         item.Marks,
			Question:      item.Question,
			CorrectAnswer: item.CorrectAnswer,
			Explanation:   item.Explanation,
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("q-%d-%d", seed, i)
		}
		if q.Type == "" {
			q.Type = exam.TypeMCQ
		}
		if q.Marks <= 0 {
			q.Marks = 1
		}

		opts, err := parseOptions(item.Options)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrBadModelOutput, i, err)
		}
		q.Options = opts

		questions = append(questions, q)
	}
	return questions, nil
}

func parseOptions(raw json.RawMessage) (map[string]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var asMap map[string]string
	if err := json.Unmarshal(raw, &asMap); err == nil {
		if len(asMap) == 0 {
			return nil, nil
		}
		normalized := make(map[string]string, len(asMap))
		for k, v := range asMap {
			normalized[strings.ToUpper(strings.TrimSpace(k))] = v
		}
		return normalized, nil
	}

	var asList []string
	if err := json.Unmarshal(raw, &asList); err != nil {
		return nil, errors.New("options must be an object or an array")
	}
	if len(asList) == 0 {
		return nil, nil
	}
	normalized := make(map[string]string, len(asList))
	for i, v := range asList {
		normalized[string(rune('A'+i))] = v
	}
	return normalized, nil
}
