package exam

import (
	"fmt"
	"strings"
)

// AttemptMeta is the header of an archived attempt transcript.
type AttemptMeta struct {
	Exam       string
	Subject    string
	Difficulty string
	Timestamp  string
}

// Transcript renders a human-readable summary of a graded attempt, the
// exact document archived to the user's Drive history.
func Transcript(meta AttemptMeta, score Score, results []GradingResult) string {
	var lines []string
	lines = append(lines,
		fmt.Sprintf("Exam: %s", meta.Exam),
		fmt.Sprintf("Subject: %s", meta.Subject),
		fmt.Sprintf("Difficulty: %s", meta.Difficulty),
		fmt.Sprintf("Timestamp: %s", meta.Timestamp),
		fmt.Sprintf("Score: %d / %d", score.Obtained, score.TotalMarks),
		"",
	)

	for i, r := range results {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, r.Question))
		if r.UserAnswer != nil {
			lines = append(lines, fmt.Sprintf("Your answer: %s", *r.UserAnswer))
		}
		lines = append(lines, fmt.Sprintf("Correct answer: %s", r.CorrectAnswer))
		verdict := "Wrong"
		if r.IsCorrect {
			verdict = "Correct"
		}
		lines = append(lines, fmt.Sprintf("Result: %s", verdict))
		if r.Explanation != "" {
			lines = append(lines, fmt.Sprintf("Explanation: %s", r.Explanation))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
