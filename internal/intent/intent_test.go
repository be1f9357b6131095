package intent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/llm"
)

func TestAnalyze_NilProvider(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	got := a.Analyze(context.Background(), "machine learning", curriculum.LevelLow)
	if got.RefinedTopic != "machine learning" {
		t.Errorf("refined topic = %q, want passthrough", got.RefinedTopic)
	}
}

func TestAnalyze_Refined(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"refined_topic": "supervised machine learning",
			"domain": "Data Science",
			"subtopics": ["regression", "classification"]
		}`),
	})
	a := NewAnalyzer(mock, nil)

	got := a.Analyze(context.Background(), "ml", curriculum.LevelMedium)
	if got.RefinedTopic != "supervised machine learning" {
		t.Errorf("refined topic = %q", got.RefinedTopic)
	}
	if got.Domain != "Data Science" {
		t.Errorf("domain = %q", got.Domain)
	}
}

func TestAnalyze_ErrorPassthrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	a := NewAnalyzer(mock, nil)

	got := a.Analyze(context.Background(), "rust", curriculum.LevelHigh)
	if got.RefinedTopic != "rust" {
		t.Errorf("refined topic = %q, want passthrough on error", got.RefinedTopic)
	}
}

func TestAnalyze_EmptyRefinedTopicPassthrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"refined_topic": "", "domain": "General", "subtopics": []}`),
	})
	a := NewAnalyzer(mock, nil)

	got := a.Analyze(context.Background(), "git", curriculum.LevelLow)
	if got.RefinedTopic != "git" {
		t.Errorf("refined topic = %q, want original topic", got.RefinedTopic)
	}
}
