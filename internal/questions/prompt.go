package questions

import (
	"fmt"
	"strings"
)

// examLabels guide the model's vocabulary and format per exam.
var examLabels = map[string]string{
	"GATE": "GATE (technical, engineering)",
	"SSC":  "SSC (government aptitude & reasoning)",
	"BANK": "Bank PO/Clerk (aptitude/reasoning)",
	"UPSC": "UPSC Prelims (general studies, objective)",
	"CAT":  "CAT (aptitude / logical / quantitative)",
	"JEE":  "JEE (physics/chemistry/maths objective)",
	"NEET": "NEET (biology/chemistry/physics objective)",
}

var difficultyGuidance = map[string]string{
	"Easy":   "Beginner / basic level. Straightforward, short, mostly one-step.",
	"Medium": "Exam-level difficulty for this exam (typical question style). Multi-step allowed.",
	"Hard":   "Advanced / above exam level. Multi-step reasoning and longer calculations.",
}

const freshness = `
Ensure high variation: do not repeat question phrasing, numbers, or structure from previous calls.
Use randomized numeric values where relevant. Shuffle options. Avoid identical templates.
`

const outputSpec = `
Return a JSON array ONLY (no explanatory text around JSON). Each item must be an object with:
{
  "id": "<unique id>",
  "type": "<MCQ|MSQ|NAT>",
  "marks": 1|2,
  "question": "<full question text>",
  "options": {"A": "...", "B": "...", "C": "...", "D": "..."},
  "correctAnswer": "<A|B|C|D|comma-separated for MSQ|numeric for NAT>",
  "explanation": "<short explanation for the answer>"
}
NAT questions omit options. Make sure correctAnswer exactly matches one of the option letters (or is numeric for NAT).
`

// BuildPrompt produces the exam-aware generation prompt.
func BuildPrompt(req GenerateRequest, count int) string {
	examLabel, ok := examLabels[strings.ToUpper(req.Exam)]
	if !ok {
		examLabel = req.Exam
	}
	guidance := difficultyGuidance[req.Difficulty]

	return fmt.Sprintf(`You are an expert question author for competitive exams.
Exam: %s
Subject: %s
Difficulty: %s (%s)
Number of questions: %d

Rules:
- Output must follow strict JSON as specified below.
- Use the exam-style language and constraints for %s.
- Use a mix of MCQ, MSQ and NAT as appropriate (for GATE include NAT & 2-mark where reasonable).
- For MCQ use 4 options. For MSQ use 4 options and correctAnswer can be comma-separated letters. For NAT provide a numeric answer (no units unless necessary).
%s
%s
Return exactly %d items in the array.`,
		examLabel, req.Subject, req.Difficulty, guidance, count, examLabel, freshness, outputSpec, count)
}
