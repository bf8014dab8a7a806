package exam

import (
	"strings"
	"testing"
)

func TestScoreAttempt(t *testing.T) {
	questions := []Question{
		{ID: "q1", Type: TypeMCQ, Marks: 1, Question: "Pick one", CorrectAnswer: "B"},
		{ID: "q2", Type: TypeNAT, Marks: 2, Question: "Compute", CorrectAnswer: "42", Explanation: "arithmetic"},
		{ID: "q3", Type: TypeMSQ, Marks: 1, Question: "Pick all", CorrectAnswer: "A,C"},
	}
	answers := map[string]string{
		"q1": "b",
		"q2": "42 ",
		"q3": "C,A",
	}

	score, results := ScoreAttempt(questions, answers)

	if score.Obtained != 4 || score.TotalMarks != 4 || score.CorrectCount != 3 {
		t.Errorf("want {4 4 3}, got %+v", score)
	}

	if len(results) != len(questions) {
		t.Fatalf("want %d results, got %d", len(questions), len(results))
	}
	for i, r := range results {
		if r.ID != questions[i].ID {
			t.Errorf("result order must follow question order: index %d has %s", i, r.ID)
		}
		if !r.IsCorrect {
			t.Errorf("question %s should be correct", r.ID)
		}
	}
	if results[1].Explanation != "arithmetic" {
		t.Errorf("explanation should carry through, got %q", results[1].Explanation)
	}
}

func TestScoreAttemptMissingAnswers(t *testing.T) {
	questions := []Question{
		{ID: "q1", Type: TypeMCQ, CorrectAnswer: "A"},
		{ID: "q2", Type: TypeNAT, Marks: 2, CorrectAnswer: "7"},
	}

	score, results := ScoreAttempt(questions, nil)

	if score.Obtained != 0 || score.CorrectCount != 0 {
		t.Errorf("no answers should score zero, got %+v", score)
	}
	if score.TotalMarks != 3 {
		t.Errorf("total marks should still sum (default 1 + 2), got %d", score.TotalMarks)
	}
	for _, r := range results {
		if r.UserAnswer != nil {
			t.Errorf("missing submission should report a null user answer, got %q", *r.UserAnswer)
		}
		if r.IsCorrect {
			t.Errorf("missing submission must grade incorrect for %s", r.ID)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	questions := []Question{
		{ID: "q1", Type: TypeMCQ, Marks: 0, CorrectAnswer: "A"}, // marks default to 1
		{ID: "q2", Type: TypeMCQ, Marks: 2, CorrectAnswer: "B"},
		{ID: "q3", Type: TypeMCQ, Marks: 1, CorrectAnswer: "C"},
	}
	answers := map[string]string{"q1": "A", "q2": "D", "q3": "c"}

	score, _ := ScoreAttempt(questions, answers)

	if score.Obtained > score.TotalMarks {
		t.Errorf("obtained (%d) must never exceed total (%d)", score.Obtained, score.TotalMarks)
	}
	if score.CorrectCount > len(questions) {
		t.Errorf("correct count (%d) must never exceed question count (%d)", score.CorrectCount, len(questions))
	}
	if score.Obtained != 2 || score.CorrectCount != 2 || score.TotalMarks != 4 {
		t.Errorf("want {2 4 2}, got %+v", score)
	}
}

func TestTranscript(t *testing.T) {
	ans := "B"
	score := Score{Obtained: 1, TotalMarks: 2, CorrectCount: 1}
	results := []GradingResult{
		{ID: "q1", Question: "Pick one", CorrectAnswer: "B", UserAnswer: &ans, IsCorrect: true, Marks: 1, Explanation: "because"},
		{ID: "q2", Question: "Compute", CorrectAnswer: "42", UserAnswer: nil, IsCorrect: false, Marks: 1},
	}
	meta := AttemptMeta{Exam: "GATE", Subject: "Algorithms", Difficulty: "Medium", Timestamp: "2026-08-29T10:00:00Z"}

	text := Transcript(meta, score, results)

	for _, want := range []string{
		"Exam: GATE",
		"Score: 1 / 2",
		"1. Pick one",
		"Your answer: B",
		"Result: Correct",
		"Explanation: because",
		"2. Compute",
		"Result: Wrong",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("transcript missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Your answer: \n2.") {
		t.Error("missing submissions must not render a Your answer line")
	}
}
