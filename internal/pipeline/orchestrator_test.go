package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/discovery"
	"github.com/learnlens/learnlens/internal/enhance"
	"github.com/learnlens/learnlens/internal/llm"
)

// fakeIndex returns the same ranked hits for every search, which exercises
// the per-request dedup threading.
type fakeIndex struct {
	hits     []discovery.SearchHit
	details  map[string]*discovery.VideoDetail
	failCall int // 1-based search call to fail; 0 = never
	calls    int
}

func (f *fakeIndex) Search(_ context.Context, query string, max int64) ([]discovery.SearchHit, error) {
	f.calls++
	if f.failCall == f.calls {
		return nil, errors.New("quota exceeded")
	}
	return f.hits, nil
}

func (f *fakeIndex) Details(_ context.Context, id string) (*discovery.VideoDetail, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, fmt.Errorf("no detail for %s", id)
	}
	return d, nil
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{
		hits: []discovery.SearchHit{{ID: "x"}, {ID: "y"}, {ID: "z"}},
		details: map[string]*discovery.VideoDetail{
			"x": {Title: "X tutorial", Description: "desc x", ChannelTitle: "ChanX"},
			"y": {Title: "Y guide", Description: "desc y", ChannelTitle: "ChanY"},
			"z": {Title: "Z talk", Description: "desc z", ChannelTitle: "ChanZ"},
		},
	}
}

// newOrchestrator wires an orchestrator with fallback-only generative
// components and the given index.
func newOrchestrator(index discovery.VideoIndex) *Orchestrator {
	return New(Options{
		Planner:   curriculum.NewPlanner(nil, curriculum.DefaultConfig(), nil),
		Discovery: discovery.NewService(index, nil),
		Enhancer:  enhance.NewEnhancer(nil, enhance.DefaultConfig(), nil),
	})
}

func TestCreateLearningPath_FullPath(t *testing.T) {
	orch := newOrchestrator(newFakeIndex())

	path, err := orch.CreateLearningPath(context.Background(), "Go", curriculum.LevelMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path.Topic != "Go" {
		t.Errorf("topic = %q, want Go", path.Topic)
	}
	if len(path.Path) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(path.Path))
	}

	// Same hit list every search: dedup must walk down the ranking.
	wantIDs := []string{"x", "y", "z"}
	for i, step := range path.Path {
		if step.ID != wantIDs[i] {
			t.Errorf("step %d video = %q, want %q", i, step.ID, wantIDs[i])
		}
	}

	first := path.Path[0]
	if first.StepName != "Go Intermediate Concepts" {
		t.Errorf("step name = %q", first.StepName)
	}
	if first.Goal != "Deepen technical understanding." {
		t.Errorf("goal = %q", first.Goal)
	}
	if first.Channel != "ChanX" {
		t.Errorf("channel = %q", first.Channel)
	}
	if first.LQS <= 0 || first.LQS > 100 {
		t.Errorf("LQS out of range: %v", first.LQS)
	}
	if len(first.Checklist) != 3 || len(first.Questions) != 1 {
		t.Errorf("fallback pack not attached: %d checklist, %d questions",
			len(first.Checklist), len(first.Questions))
	}
}

func TestCreateLearningPath_SkipsFailedStep(t *testing.T) {
	index := newFakeIndex()
	index.failCall = 2
	orch := newOrchestrator(index)

	path, err := orch.CreateLearningPath(context.Background(), "Go", curriculum.LevelLow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path.Path) != 2 {
		t.Fatalf("expected 2 steps after one skip, got %d", len(path.Path))
	}

	// Steps 1 and 3 survive; the skipped step is never backfilled.
	if path.Path[0].StepName != "Go Basics" {
		t.Errorf("first step = %q", path.Path[0].StepName)
	}
	if path.Path[1].StepName != "Go Common Mistakes" {
		t.Errorf("second step = %q, want the third plan step", path.Path[1].StepName)
	}

	// The skipped step's candidate was never marked seen.
	if path.Path[0].ID != "x" || path.Path[1].ID != "y" {
		t.Errorf("video ids = %q, %q; want x, y", path.Path[0].ID, path.Path[1].ID)
	}
}

func TestCreateLearningPath_NoIndex(t *testing.T) {
	orch := newOrchestrator(nil)

	path, err := orch.CreateLearningPath(context.Background(), "Kafka", curriculum.LevelHigh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path.Topic != "Kafka" {
		t.Errorf("topic = %q", path.Topic)
	}
	if len(path.Path) != 0 {
		t.Errorf("expected empty path with no index, got %d steps", len(path.Path))
	}
}

func TestCreateLearningPath_PackDefaults(t *testing.T) {
	emptyPack := json.RawMessage(`{
		"brief_summary": "",
		"pre_learning_checklist": null,
		"test_questions": null,
		"mental_model": ""
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}, // planner -> fallback plan
		llm.MockResponse{Content: emptyPack},
		llm.MockResponse{Content: emptyPack},
		llm.MockResponse{Content: emptyPack},
	)

	orch := New(Options{
		Planner:   curriculum.NewPlanner(mock, curriculum.DefaultConfig(), nil),
		Discovery: discovery.NewService(newFakeIndex(), nil),
		Enhancer:  enhance.NewEnhancer(mock, enhance.DefaultConfig(), nil),
	})

	path, err := orch.CreateLearningPath(context.Background(), "Go", curriculum.LevelMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path.Path) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(path.Path))
	}

	for i, step := range path.Path {
		if step.Summary != "Detailed overview of the current module." {
			t.Errorf("step %d summary = %q, want default", i, step.Summary)
		}
		if step.MentalModel != "Foundational concepts for mastery." {
			t.Errorf("step %d mental model = %q, want default", i, step.MentalModel)
		}
		if step.Questions == nil || step.Checklist == nil {
			t.Errorf("step %d slices must be non-nil for JSON shape", i)
		}
	}
}

func TestCreateLearningPath_ResponseShape(t *testing.T) {
	orch := newOrchestrator(newFakeIndex())

	path, err := orch.CreateLearningPath(context.Background(), "Go", curriculum.LevelMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(path)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["topic"]; !ok {
		t.Error("missing topic field")
	}
	steps, ok := decoded["path"].([]any)
	if !ok || len(steps) == 0 {
		t.Fatal("missing path array")
	}

	first := steps[0].(map[string]any)
	for _, key := range []string{"id", "title", "summary", "channel", "step_name", "goal", "lqs", "questions", "checklist", "mental_model"} {
		if _, ok := first[key]; !ok {
			t.Errorf("step missing %q field", key)
		}
	}
}
