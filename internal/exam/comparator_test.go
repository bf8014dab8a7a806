package exam

import "testing"

func TestCompareNAT(t *testing.T) {
	q := Question{Type: TypeNAT, CorrectAnswer: "42"}

	cases := []struct {
		name      string
		submitted string
		want      bool
	}{
		{"Exact", "42", true},
		{"TrailingSpace", "42 ", true},
		{"LeadingSpace", "  42", true},
		{"Wrong", "43", false},
		{"Empty", "", false},
		{"NonNumericJunk", "forty-two", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(q, tc.submitted); got != tc.want {
				t.Errorf("Compare(%q) = %v, want %v", tc.submitted, got, tc.want)
			}
		})
	}

	t.Run("CaseSensitive", func(t *testing.T) {
		q := Question{Type: TypeNAT, CorrectAnswer: "2e3"}
		if Compare(q, "2E3") {
			t.Error("NAT comparison must be case-sensitive")
		}
	})

	t.Run("BothEmpty", func(t *testing.T) {
		q := Question{Type: TypeNAT, CorrectAnswer: ""}
		if !Compare(q, "") {
			t.Error("empty submission against empty answer should match")
		}
	})
}

func TestCompareMSQ(t *testing.T) {
	q := Question{Type: TypeMSQ, CorrectAnswer: "A,C"}

	cases := []struct {
		name      string
		submitted string
		want      bool
	}{
		{"SameOrder", "A,C", true},
		{"Permuted", "C,A", true},
		{"LowercaseSpaced", " c , a ", true},
		{"Missing", "A", false},
		{"Extra", "A,B,C", false},
		{"Empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(q, tc.submitted); got != tc.want {
				t.Errorf("Compare(%q) = %v, want %v", tc.submitted, got, tc.want)
			}
		})
	}

	t.Run("PermutationInvariant", func(t *testing.T) {
		a := Compare(Question{Type: TypeMSQ, CorrectAnswer: "B,A"}, "A,B")
		b := Compare(Question{Type: TypeMSQ, CorrectAnswer: "A,B"}, "A,B")
		if a != b {
			t.Error("comparator must be invariant under permutation of the answer key")
		}
	})

	t.Run("DuplicatesKeepCounts", func(t *testing.T) {
		// Sorting does not dedupe: repeated letters change the token count.
		if Compare(Question{Type: TypeMSQ, CorrectAnswer: "A,B"}, "A,A,B") {
			t.Error("duplicate letters must not collapse into a match")
		}
	})
}

func TestCompareMCQ(t *testing.T) {
	q := Question{Type: TypeMCQ, CorrectAnswer: "B"}

	cases := []struct {
		name      string
		submitted string
		want      bool
	}{
		{"Exact", "B", true},
		{"Lowercase", "b", true},
		{"Spaced", " b ", true},
		{"Wrong", "A", false},
		{"Empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(q, tc.submitted); got != tc.want {
				t.Errorf("Compare(%q) = %v, want %v", tc.submitted, got, tc.want)
			}
		})
	}

	t.Run("UnknownTypeFallsBackToMCQ", func(t *testing.T) {
		q := Question{Type: "TRUEFALSE", CorrectAnswer: "a"}
		if !Compare(q, "A") {
			t.Error("unrecognized types should grade like MCQ")
		}
	})
}
