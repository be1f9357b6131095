// Package intent refines a raw learning request before planning: a more
// specific topic name, its domain, and the subtopics worth covering.
// Like every generative component it degrades to a deterministic
// passthrough when the service is unavailable.
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/llm"
)

// Analysis is the refined view of a learning request.
type Analysis struct {
	RefinedTopic string   `json:"refined_topic"`
	Domain       string   `json:"domain"`
	Subtopics    []string `json:"subtopics"`
}

// Schema defines the JSON structure for intent analysis.
var Schema = &llm.Schema{
	Name:        "learning-intent",
	Description: "Refined topic, domain, and subtopics for a learning request",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"refined_topic": map[string]any{
				"type":        "string",
				"description": "A more specific topic name if needed",
			},
			"domain": map[string]any{
				"type":        "string",
				"description": "Academic or professional domain, e.g. Computer Science",
			},
			"subtopics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 specific subtopics that should be covered",
			},
		},
		"required":             []any{"refined_topic", "domain", "subtopics"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You analyze learning requests and identify what the learner really wants to study.`

// Analyzer refines learning requests via the generative service.
type Analyzer struct {
	provider llm.Provider // nil when no credential is configured
	log      *zap.Logger
}

// NewAnalyzer creates an intent analyzer. A nil provider is allowed.
func NewAnalyzer(provider llm.Provider, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{provider: provider, log: log}
}

// Analyze returns the refined request. On any failure the original topic
// passes through unchanged with a generic domain.
func (a *Analyzer) Analyze(ctx context.Context, topic string, level curriculum.Level) Analysis {
	if a.provider == nil {
		return passthrough(topic)
	}

	ctx = llm.WithPurpose(ctx, "intent")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, level)},
		},
		Schema:    Schema,
		MaxTokens: 512,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		a.log.Warn("intent analysis falling back", zap.String("topic", topic), zap.Error(err))
		return passthrough(topic)
	}

	var out Analysis
	if err := json.Unmarshal([]byte(llm.StripFences(string(resp.Content))), &out); err != nil {
		a.log.Warn("intent response unparseable", zap.String("topic", topic), zap.Error(err))
		return passthrough(topic)
	}
	if out.RefinedTopic == "" {
		out.RefinedTopic = topic
	}
	return out
}

func buildUserMessage(topic string, level curriculum.Level) string {
	var b strings.Builder

	b.WriteString("Analyze the learning intent for the following request:\n")
	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Learner Level: %s\n", level))

	b.WriteString(`
Return a JSON object with:
- refined_topic: A more specific topic name if needed.
- domain: The academic or professional domain (e.g., Computer Science, Biology).
- subtopics: A list of 3-5 specific subtopics that should be covered.`)

	return b.String()
}

func passthrough(topic string) Analysis {
	return Analysis{
		RefinedTopic: topic,
		Domain:       "General",
		Subtopics:    []string{topic},
	}
}
