package exam

import (
	"sort"
	"strings"
)

// Compare grades a single question against a raw submitted value. Pure and
// total: malformed input coerces to the empty string and grades incorrect.
func Compare(q Question, submitted string) bool {
	switch strings.ToUpper(strings.TrimSpace(q.Type)) {
	case TypeNAT:
		// Exact trimmed match, case-sensitive. No numeric tolerance.
		return strings.TrimSpace(q.CorrectAnswer) == strings.TrimSpace(submitted)
	case TypeMSQ:
		expected := letterTokens(q.CorrectAnswer)
		got := letterTokens(submitted)
		if len(expected) != len(got) {
			return false
		}
		for i := range expected {
			if expected[i] != got[i] {
				return false
			}
		}
		return true
	default: // MCQ and anything unrecognized
		return strings.ToUpper(strings.TrimSpace(q.CorrectAnswer)) ==
			strings.ToUpper(strings.TrimSpace(submitted))
	}
}

// letterTokens splits a comma-joined answer into trimmed, uppercased,
// sorted tokens. Sorting makes MSQ order-insensitive; duplicates are kept,
// so "A,A,B" and "A,B" do not match.
func letterTokens(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.ToUpper(strings.TrimSpace(p))
	}
	sort.Strings(tokens)
	return tokens
}
