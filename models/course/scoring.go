package course

// PassThreshold is the fraction of questions that must be answered correctly.
const PassThreshold = 0.8

// EvaluateQuiz scores a submitted answer map against the quiz questions.
// The score is the number of questions whose selected answer matches the
// correct one exactly. A quiz passes when score >= PassThreshold * N, so for
// 10 questions a score of 8 passes and 7 fails. An empty quiz never passes.
func EvaluateQuiz(questions []Question, answers map[int]string) (score int, passed bool) {
	if len(questions) == 0 {
		return 0, false
	}

	for _, q := range questions {
		if answers[q.ID] == q.Correct {
			score++
		}
	}

	passed = float64(score) >= PassThreshold*float64(len(questions))
	return score, passed
}

// StripAnswers returns a copy of questions with the correct answers blanked,
// for serving a quiz to a learner.
func StripAnswers(questions []Question) []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	for i := range out {
		out[i].Correct = ""
	}
	return out
}
