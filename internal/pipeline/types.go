package pipeline

import "github.com/learnlens/learnlens/internal/enhance"

// LearningPathStep is one fully assembled step of the final path: the
// curriculum step, the discovered video, its quality score, and the
// enrichment pack, flattened into the response shape.
type LearningPathStep struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Summary     string                 `json:"summary"`
	Channel     string                 `json:"channel"`
	StepName    string                 `json:"step_name"`
	Goal        string                 `json:"goal"`
	LQS         float64                `json:"lqs"`
	Questions   []enhance.QuizQuestion `json:"questions"`
	Checklist   []string               `json:"checklist"`
	MentalModel string                 `json:"mental_model"`
}

// LearningPath is one constructed path. Request-scoped: assembled once per
// request and discarded after the response.
type LearningPath struct {
	Topic string             `json:"topic"`
	Path  []LearningPathStep `json:"path"`
}
