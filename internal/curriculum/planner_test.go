package curriculum

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/learnlens/learnlens/internal/llm"
)

func validRoadmapJSON() json.RawMessage {
	return json.RawMessage(`[
		{"step_title": "Go Routines", "focus": "go goroutines basics", "level": "Low", "goal": "Understand concurrency primitives."},
		{"step_title": "Go Channels", "focus": "go channels patterns", "level": "Medium", "goal": "Coordinate goroutines safely."},
		{"step_title": "Go Scheduler", "focus": "go runtime scheduler internals", "level": "High", "goal": "Reason about scheduling behavior."}
	]`)
}

func TestCreatePath_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validRoadmapJSON()})
	p := NewPlanner(mock, DefaultConfig(), nil)

	steps := p.CreatePath(context.Background(), "Go", LevelMedium)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	if steps[0].StepTitle != "Go Routines" {
		t.Errorf("unexpected first step title: %q", steps[0].StepTitle)
	}
	if steps[2].Level != LevelHigh {
		t.Errorf("expected High level on step 3, got %q", steps[2].Level)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestCreatePath_FencedResponse(t *testing.T) {
	fenced := "```json\n" + string(validRoadmapJSON()) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	p := NewPlanner(mock, DefaultConfig(), nil)

	steps := p.CreatePath(context.Background(), "Go", LevelMedium)
	if steps[1].Focus != "go channels patterns" {
		t.Errorf("fenced response not parsed, got focus %q", steps[1].Focus)
	}
}

func TestCreatePath_NilProvider(t *testing.T) {
	p := NewPlanner(nil, DefaultConfig(), nil)

	steps := p.CreatePath(context.Background(), "Rust", LevelLow)
	want := FallbackPath("Rust", LevelLow)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for i := range steps {
		if steps[i] != want[i] {
			t.Errorf("step %d = %+v, want fallback %+v", i, steps[i], want[i])
		}
	}
}

func TestCreatePath_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	p := NewPlanner(mock, DefaultConfig(), nil)

	steps := p.CreatePath(context.Background(), "Kafka", LevelHigh)
	if steps[0].StepTitle != "Kafka Expert Internals" {
		t.Errorf("expected High fallback, got %q", steps[0].StepTitle)
	}
}

func TestCreatePath_WrongStepCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`[{"step_title": "Only One", "focus": "x", "level": "Low", "goal": "y"}]`),
	})
	p := NewPlanner(mock, DefaultConfig(), nil)

	steps := p.CreatePath(context.Background(), "SQL", LevelMedium)
	if len(steps) != 3 {
		t.Fatalf("expected 3 fallback steps, got %d", len(steps))
	}
	if steps[0].StepTitle != "SQL Intermediate Concepts" {
		t.Errorf("expected Medium fallback, got %q", steps[0].StepTitle)
	}
}

func TestCreatePath_Unparseable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`here is your roadmap: step one...`),
	})
	p := NewPlanner(mock, DefaultConfig(), nil)

	steps := p.CreatePath(context.Background(), "Docker", LevelLow)
	if steps[0].StepTitle != "Docker Basics" {
		t.Errorf("expected Low fallback, got %q", steps[0].StepTitle)
	}
}

func TestCreatePath_MissingStepLevelInherits(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`[
			{"step_title": "A", "focus": "a", "goal": "g1"},
			{"step_title": "B", "focus": "b", "goal": "g2"},
			{"step_title": "C", "focus": "c", "goal": "g3"}
		]`),
	})
	p := NewPlanner(mock, DefaultConfig(), nil)

	steps := p.CreatePath(context.Background(), "Git", LevelHigh)
	for i, s := range steps {
		if s.Level != LevelHigh {
			t.Errorf("step %d level = %q, want inherited High", i, s.Level)
		}
	}
}

func TestFallbackPath_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      Level
		firstTitle string
		lastFocus  string
	}{
		{"low", LevelLow, "React Basics", "React best practices for beginners"},
		{"medium", LevelMedium, "React Intermediate Concepts", "React performance optimization"},
		{"high", LevelHigh, "React Expert Internals", "React future features roadmap"},
		{"unknown", Level("Beginner"), "React Foundations", "React optimization"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := FallbackPath("React", tt.level)
			if len(steps) != 3 {
				t.Fatalf("expected 3 steps, got %d", len(steps))
			}
			if steps[0].StepTitle != tt.firstTitle {
				t.Errorf("first title = %q, want %q", steps[0].StepTitle, tt.firstTitle)
			}
			if steps[2].Focus != tt.lastFocus {
				t.Errorf("last focus = %q, want %q", steps[2].Focus, tt.lastFocus)
			}
		})
	}
}

func TestFallbackPath_UnknownLevelMixedProgression(t *testing.T) {
	steps := FallbackPath("Vim", Level("expert-ish"))
	want := []Level{LevelLow, LevelMedium, LevelHigh}
	for i, s := range steps {
		if s.Level != want[i] {
			t.Errorf("step %d level = %q, want %q", i, s.Level, want[i])
		}
	}
}
