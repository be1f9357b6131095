package enhance

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/learnlens/learnlens/internal/discovery"
	"github.com/learnlens/learnlens/internal/llm"
)

// Enhancer produces the content pack for a discovered video. Its contract
// is that it always succeeds: every failure mode (no credential, network,
// quota, non-JSON output, missing fields) collapses to the deterministic
// fallback pack templated on the video title.
type Enhancer struct {
	provider llm.Provider // nil when no credential is configured
	cfg      Config
	log      *zap.Logger
}

// NewEnhancer creates a content enhancer. A nil provider is allowed and
// routes every call to the fallback pack.
func NewEnhancer(provider llm.Provider, cfg Config, log *zap.Logger) *Enhancer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Enhancer{provider: provider, cfg: cfg, log: log}
}

// packOutput mirrors ContentPack but keeps quiz entries in their raw,
// possibly incomplete wire form for the repair pass.
type packOutput struct {
	BriefSummary         string          `json:"brief_summary"`
	PreLearningChecklist []string        `json:"pre_learning_checklist"`
	TestQuestions        []questionOutput `json:"test_questions"`
	MentalModel          string          `json:"mental_model"`
}

type questionOutput struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correct_index"`
	Answer       string   `json:"answer"`
}

// Enhance returns the content pack for the video. Never fails.
func (e *Enhancer) Enhance(ctx context.Context, video discovery.VideoCandidate) ContentPack {
	if e.provider == nil {
		return FallbackPack(video.Title)
	}

	ctx = llm.WithPurpose(ctx, "enhance")

	req := llm.Request{
		System: enhancerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEnhancerUserMessage(video)},
		},
		Schema:      PackSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		e.log.Warn("enhancer falling back", zap.String("video", video.ID), zap.Error(err))
		return FallbackPack(video.Title)
	}

	var out packOutput
	if err := json.Unmarshal([]byte(llm.StripFences(string(resp.Content))), &out); err != nil {
		e.log.Warn("enhancer response unparseable", zap.String("video", video.ID), zap.Error(err))
		return FallbackPack(video.Title)
	}

	return ContentPack{
		BriefSummary:         llm.StripEmphasis(out.BriefSummary),
		PreLearningChecklist: out.PreLearningChecklist,
		TestQuestions:        repairQuestions(out.TestQuestions),
		MentalModel:          llm.StripEmphasis(out.MentalModel),
	}
}
