package chat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/exam-ai-app/backend/internal/exam"
	"github.com/exam-ai-app/backend/internal/session"
)

// Reply length caps, in lines. The study assistant stays terse; the
// mentor is allowed longer guidance.
const (
	studyReplyLines  = 10
	mentorReplyLines = 20
)

// historyWindow is how many prior turns are replayed into the prompt.
const historyWindow = 7

var questionRef = regexp.MustCompile(`(?i)(?:q|question|solve|explain|answer)\s*\.?\s*(\d+)`)

// detectTargetQuestion finds a 1-based question number in a message like
// "explain q3" or "solve question 12". Returns 0 when nothing matches.
func detectTargetQuestion(message string) int {
	m := questionRef.FindStringSubmatch(message)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func formatHistory(messages []session.Message) string {
	start := 0
	if len(messages) > historyWindow {
		start = len(messages) - historyWindow
	}

	var b strings.Builder
	for _, m := range messages[start:] {
		role := "Student"
		if m.Role == "assistant" {
			role = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, m.Text)
	}
	return b.String()
}

func formatQuestion(n int, q exam.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question %d: %s\n", n, q.Question)
	for _, letter := range []string{"A", "B", "C", "D", "E"} {
		if text, ok := q.Options[letter]; ok {
			fmt.Fprintf(&b, "%s) %s\n", letter, text)
		}
	}
	fmt.Fprintf(&b, "Correct answer: %s\n", q.CorrectAnswer)
	if q.Explanation != "" {
		fmt.Fprintf(&b, "Explanation: %s\n", q.Explanation)
	}
	return b.String()
}

// buildStudyPrompt assembles the short-form study assistant prompt. When
// the student references a question by number and the paper is attached,
// that question is inlined so the model answers about the right one.
func buildStudyPrompt(req TurnRequest, history []session.Message) string {
	var b strings.Builder

	b.WriteString("You are a concise study assistant for competitive exam preparation.\n")
	if req.Exam != "" {
		fmt.Fprintf(&b, "Exam: %s\n", req.Exam)
	}
	if req.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	}

	if n := detectTargetQuestion(req.Message); n >= 1 && n <= len(req.Questions) {
		b.WriteString("\nThe student is asking about this question:\n")
		b.WriteString(formatQuestion(n, req.Questions[n-1]))
	}

	if h := formatHistory(history); h != "" {
		b.WriteString("\nConversation so far:\n")
		b.WriteString(h)
	}

	fmt.Fprintf(&b, "\nStudent: %s\n", req.Message)
	fmt.Fprintf(&b, "\nAnswer directly and briefly, at most %d lines. No markdown headings.", studyReplyLines)
	return b.String()
}

// buildMentorPrompt assembles the long-form mentor prompt: strategy,
// planning and motivation rather than single-question help.
func buildMentorPrompt(req TurnRequest, history []session.Message) string {
	var b strings.Builder

	b.WriteString("You are an experienced mentor for competitive exam aspirants.\n")
	b.WriteString("Give practical guidance on preparation strategy, time management and exam temperament.\n")
	if req.Exam != "" {
		fmt.Fprintf(&b, "The student is preparing for: %s\n", req.Exam)
	}

	if h := formatHistory(history); h != "" {
		b.WriteString("\nConversation so far:\n")
		b.WriteString(h)
	}

	fmt.Fprintf(&b, "\nStudent: %s\n", req.Message)
	fmt.Fprintf(&b, "\nRespond in at most %d lines. Be specific and actionable.", mentorReplyLines)
	return b.String()
}

// limitLines trims each line, drops blank ones and keeps at most n of
// the rest, so padding never eats into the cap.
func limitLines(text string, n int) string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
