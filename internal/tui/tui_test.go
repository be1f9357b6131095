package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/enhance"
	"github.com/learnlens/learnlens/internal/pipeline"
)

type stubBuilder struct {
	path *pipeline.LearningPath
	err  error
}

func (s *stubBuilder) CreateLearningPath(context.Context, string, curriculum.Level) (*pipeline.LearningPath, error) {
	return s.path, s.err
}

func testPath() *pipeline.LearningPath {
	return &pipeline.LearningPath{
		Topic: "Go",
		Path: []pipeline.LearningPathStep{
			{
				ID:          "v1",
				Title:       "Go Concurrency Patterns",
				Summary:     "Goroutines and channels.",
				Channel:     "GopherCon",
				StepName:    "Go Basics",
				Goal:        "Understand core concepts.",
				LQS:         84.5,
				Questions:   []enhance.QuizQuestion{{Question: "What starts a goroutine?", Options: []string{"go", "run", "spawn", "fork"}}},
				Checklist:   []string{"Install Go"},
				MentalModel: "Conveyor belts between workers.",
			},
		},
	}
}

func TestNewModel_TopicSkipsInput(t *testing.T) {
	m := newModel(&stubBuilder{}, "kubernetes", curriculum.LevelLow)
	if m.phase != phaseBuilding {
		t.Errorf("phase = %d, want building", m.phase)
	}

	empty := newModel(&stubBuilder{}, "  ", curriculum.LevelLow)
	if empty.phase != phaseInput {
		t.Errorf("blank topic should start at input, got phase %d", empty.phase)
	}
}

func TestUpdate_PathReady(t *testing.T) {
	m := newModel(&stubBuilder{}, "go", curriculum.LevelMedium)

	next, _ := m.Update(pathReadyMsg{Path: testPath()})
	got := next.(model)
	if got.phase != phaseDone {
		t.Errorf("phase = %d, want done", got.phase)
	}
	if got.path == nil || got.path.Topic != "Go" {
		t.Errorf("path not stored: %+v", got.path)
	}
}

func TestUpdate_PathError(t *testing.T) {
	m := newModel(&stubBuilder{}, "go", curriculum.LevelMedium)

	next, _ := m.Update(pathReadyMsg{Err: errors.New("boom")})
	got := next.(model)
	if got.phase != phaseError {
		t.Errorf("phase = %d, want error", got.phase)
	}
}

func TestUpdate_SpinnerAdvancesOnlyWhileBuilding(t *testing.T) {
	m := newModel(&stubBuilder{}, "go", curriculum.LevelMedium)

	next, cmd := m.Update(spinnerTickMsg(time.Now()))
	got := next.(model)
	if got.spinFrame != 1 {
		t.Errorf("spin frame = %d, want 1", got.spinFrame)
	}
	if cmd == nil {
		t.Error("expected a re-tick command while building")
	}

	done, _ := got.Update(pathReadyMsg{Path: testPath()})
	after, cmd := done.(model).Update(spinnerTickMsg(time.Now()))
	if after.(model).spinFrame != 1 {
		t.Error("spinner advanced after building finished")
	}
	if cmd != nil {
		t.Error("no re-tick expected after building finished")
	}
}

func TestRenderPath(t *testing.T) {
	out := renderPath(testPath(), curriculum.LevelMedium, 100)

	for _, want := range []string{
		"Learning Path: Go",
		"Go Concurrency Patterns",
		"Go Basics",
		"GopherCon",
		"LQS 84.5",
		"Install Go",
		"What starts a goroutine?",
		"Conveyor belts between workers.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered path missing %q", want)
		}
	}
}

func TestRenderPath_Empty(t *testing.T) {
	out := renderPath(&pipeline.LearningPath{Topic: "Go"}, curriculum.LevelLow, 80)
	if !strings.Contains(out, "No videos could be matched") {
		t.Error("empty path should render the no-results message")
	}
}
