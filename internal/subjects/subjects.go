package subjects

import (
	"fmt"
	"strings"
)

// Hardcoded subject catalog per exam. GATE doubles as the fallback for
// unknown exams.
var subjectMap = map[string][]string{
	"GATE": {
		"Engineering Mathematics",
		"Digital Logic",
		"Computer Organization",
		"Data Structures",
		"Algorithms",
		"Theory of Computation",
		"Operating Systems",
		"Databases",
		"Computer Networks",
		"Compiler Design",
		"Software Engineering",
	},
	"JEE": {
		"Mathematics",
		"Physics",
		"Chemistry",
		"Mechanics",
		"Electrostatics",
		"Modern Physics",
	},
	"NEET": {"Physics", "Chemistry", "Biology"},
	"CAT":  {"Quantitative Ability", "Verbal Ability", "Data Interpretation", "Logical Reasoning"},
	"UPSC": {"Polity", "History", "Geography", "Economy", "Environment"},
}

// ForExam returns the subject list for an exam, falling back to GATE.
func ForExam(exam string) (string, []string) {
	key := strings.ToUpper(strings.TrimSpace(exam))
	if key == "" {
		key = "GATE"
	}
	if subjects, ok := subjectMap[key]; ok {
		return key, subjects
	}
	return key, subjectMap["GATE"]
}

var practiceTemplates = map[string][]string{
	"Easy": {
		"Explain the basic concept of {topic}.",
		"What is the definition of {topic}? Give one example.",
		"Choose the best option: which statement about {topic} is true?",
	},
	"Medium": {
		"Solve: A problem involving {topic}. Provide steps.",
		"Derive the formula related to {topic} and explain assumptions.",
		"Compare and contrast {topic} with a close topic.",
	},
	"Hard": {
		"Design an algorithm to handle {topic} under constraints; analyze complexity.",
		"Prove a key theorem related to {topic} or provide a counterexample.",
		"Advanced problem: combine {topic} with another concept and solve.",
	},
}

// Practice renders count template questions for a subject without going
// through the model. Count clamps to 1..50.
func Practice(subject, difficulty string, count int) string {
	if count <= 0 {
		count = 10
	}
	if count > 50 {
		count = 50
	}

	templates, ok := practiceTemplates[difficulty]
	if !ok {
		templates = practiceTemplates["Easy"]
	}

	topics := []string{
		subject,
		subject + " - core concept",
		subject + " application",
		subject + " tricky case",
		subject + " past-year style",
	}

	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		tpl := templates[i%len(templates)]
		topic := topics[i%len(topics)]
		q := strings.ReplaceAll(tpl, "{topic}", topic)
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q))
	}
	return strings.Join(lines, "\n\n")
}
