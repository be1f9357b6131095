package enhance

// repairQuestions turns raw quiz entries into well-formed ones. An entry
// missing correct_index gets it inferred from the "answer" field when that
// text matches one of the options; otherwise the index defaults to 0.
// Out-of-range indexes are clamped to 0 as well.
func repairQuestions(raw []questionOutput) []QuizQuestion {
	out := make([]QuizQuestion, 0, len(raw))
	for _, q := range raw {
		idx := 0
		switch {
		case q.CorrectIndex != nil && *q.CorrectIndex >= 0 && *q.CorrectIndex < len(q.Options):
			idx = *q.CorrectIndex
		case q.Answer != "":
			for i, opt := range q.Options {
				if opt == q.Answer {
					idx = i
					break
				}
			}
		}

		out = append(out, QuizQuestion{
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: idx,
		})
	}
	return out
}
