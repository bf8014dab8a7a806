package exam

// ScoreAttempt grades every question against the submitted answers and
// aggregates the result. Result order follows question order; credit is
// binary per question.
func ScoreAttempt(questions []Question, answers map[string]string) (Score, []GradingResult) {
	var score Score
	results := make([]GradingResult, 0, len(questions))

	for _, q := range questions {
		marks := q.Marks
		if marks < 1 {
			marks = 1
		}
		score.TotalMarks += marks

		raw, submitted := "", (*string)(nil)
		if v, ok := answers[q.ID]; ok {
			raw = v
			submitted = &v
		}

		correct := Compare(q, raw)
		if correct {
			score.CorrectCount++
			score.Obtained += marks
		}

		results = append(results, GradingResult{
			ID:            q.ID,
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    submitted,
			IsCorrect:     correct,
			Marks:         marks,
			Explanation:   q.Explanation,
		})
	}

	return score, results
}
