package enhance

// QuizQuestion is one multiple-choice check with exactly 4 options.
// CorrectIndex is always in [0, 3] by the time a pack leaves this package.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// ContentPack is the enrichment bundle attached to one discovered video:
// a summary, a 3-item prerequisite checklist, quiz questions, and a
// conceptual analogy. Packs come from the generative service or, when
// that path fails in any way, from the deterministic fallback template.
type ContentPack struct {
	BriefSummary         string         `json:"brief_summary"`
	PreLearningChecklist []string       `json:"pre_learning_checklist"`
	TestQuestions        []QuizQuestion `json:"test_questions"`
	MentalModel          string         `json:"mental_model"`
}
