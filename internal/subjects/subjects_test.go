package subjects

import (
	"strings"
	"testing"
)

func TestForExam(t *testing.T) {
	exam, list := ForExam("neet")
	if exam != "NEET" {
		t.Errorf("exam must normalize to upper case, got %q", exam)
	}
	if len(list) != 3 {
		t.Errorf("want 3 NEET subjects, got %d", len(list))
	}

	_, fallback := ForExam("UNKNOWN")
	if len(fallback) == 0 || fallback[0] != "Engineering Mathematics" {
		t.Errorf("unknown exams must fall back to the GATE catalog, got %v", fallback)
	}

	_, empty := ForExam("  ")
	if len(empty) == 0 {
		t.Error("blank exam must fall back to the GATE catalog")
	}
}

func TestPractice(t *testing.T) {
	text := Practice("Algorithms", "Medium", 5)

	parts := strings.Split(text, "\n\n")
	if len(parts) != 5 {
		t.Fatalf("want 5 questions, got %d", len(parts))
	}
	if !strings.HasPrefix(parts[0], "1. ") || !strings.HasPrefix(parts[4], "5. ") {
		t.Errorf("questions must be numbered: %q ... %q", parts[0], parts[4])
	}
	if !strings.Contains(text, "Algorithms") {
		t.Error("templates must be filled with the subject")
	}
	if strings.Contains(text, "{topic}") {
		t.Error("template placeholder must not leak through")
	}
}

func TestPracticeClampsAndDefaults(t *testing.T) {
	if n := len(strings.Split(Practice("Maths", "Easy", 0), "\n\n")); n != 10 {
		t.Errorf("zero count must default to 10, got %d", n)
	}
	if n := len(strings.Split(Practice("Maths", "Easy", 500), "\n\n")); n != 50 {
		t.Errorf("oversized count must clamp to 50, got %d", n)
	}
	if text := Practice("Maths", "Extreme", 3); text == "" {
		t.Error("unknown difficulty must fall back to the easy templates")
	}
}
