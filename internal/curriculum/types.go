package curriculum

// Level is the learner's self-reported proficiency. It drives both the
// pedagogical progression used by the planner and the level-matching
// heuristic in scoring.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// Known reports whether the level is one of the three recognized values.
// Unknown levels are not an error: the planner falls back to a mixed
// Low→Medium→High progression for them.
func (l Level) Known() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

func (l Level) String() string { return string(l) }

// Step is one stage of a 3-stage learning path. Steps are created by the
// planner and never mutated afterwards; discovery reads Focus and StepTitle
// to build its search query, and the final path carries StepTitle and Goal
// through to the response.
type Step struct {
	StepTitle string `json:"step_title"`
	Focus     string `json:"focus"`
	Level     Level  `json:"level"`
	Goal      string `json:"goal"`
}
