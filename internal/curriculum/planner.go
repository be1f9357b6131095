package curriculum

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/learnlens/learnlens/internal/llm"
)

// Planner produces the 3-step curriculum skeleton for a topic. It always
// succeeds: when the generative service is unconfigured, unreachable, or
// returns something unusable, the deterministic per-level fallback table
// takes over.
type Planner struct {
	provider llm.Provider // nil when no credential is configured
	cfg      Config
	log      *zap.Logger
}

// NewPlanner creates a path planner. A nil provider is allowed and routes
// every request straight to the fallback table.
func NewPlanner(provider llm.Provider, cfg Config, log *zap.Logger) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{provider: provider, cfg: cfg, log: log}
}

type stepOutput struct {
	StepTitle string `json:"step_title"`
	Focus     string `json:"focus"`
	Level     string `json:"level"`
	Goal      string `json:"goal"`
}

// CreatePath returns exactly 3 curriculum steps for the topic, tailored to
// the level's pedagogical progression. Success and fallback paths both
// honor the length guarantee.
func (p *Planner) CreatePath(ctx context.Context, topic string, level Level) []Step {
	if p.provider == nil {
		return FallbackPath(topic, level)
	}

	ctx = llm.WithPurpose(ctx, "path-plan")

	req := llm.Request{
		System: plannerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlannerUserMessage(topic, level)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		p.log.Warn("planner falling back", zap.String("topic", topic), zap.Error(err))
		return FallbackPath(topic, level)
	}

	var out []stepOutput
	if err := json.Unmarshal([]byte(llm.StripFences(string(resp.Content))), &out); err != nil {
		p.log.Warn("planner response unparseable", zap.String("topic", topic), zap.Error(err))
		return FallbackPath(topic, level)
	}
	if len(out) != 3 {
		p.log.Warn("planner returned wrong step count",
			zap.String("topic", topic), zap.Int("steps", len(out)))
		return FallbackPath(topic, level)
	}

	steps := make([]Step, 3)
	for i, s := range out {
		stepLevel := Level(s.Level)
		if stepLevel == "" {
			stepLevel = level
		}
		steps[i] = Step{
			StepTitle: s.StepTitle,
			Focus:     s.Focus,
			Level:     stepLevel,
			Goal:      s.Goal,
		}
	}
	return steps
}
