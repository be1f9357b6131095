package enhance

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/learnlens/learnlens/internal/discovery"
	"github.com/learnlens/learnlens/internal/llm"
)

func testVideo() discovery.VideoCandidate {
	return discovery.VideoCandidate{
		ID:           "abc123",
		Title:        "Go Concurrency Patterns",
		Description:  "A deep dive into goroutines and channels.",
		ChannelTitle: "GopherCon",
	}
}

func validPackJSON() json.RawMessage {
	return json.RawMessage(`{
		"brief_summary": "Covers goroutines, channels, and select.",
		"pre_learning_checklist": ["Install Go", "Read the tour", "Set aside an hour"],
		"test_questions": [
			{"question": "What starts a goroutine?", "options": ["go", "run", "spawn", "fork"], "correct_index": 0}
		],
		"mental_model": "Channels are conveyor belts between workers."
	}`)
}

func TestEnhance_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPackJSON()})
	e := NewEnhancer(mock, DefaultConfig(), nil)

	pack := e.Enhance(context.Background(), testVideo())
	if pack.BriefSummary != "Covers goroutines, channels, and select." {
		t.Errorf("unexpected summary: %q", pack.BriefSummary)
	}
	if len(pack.PreLearningChecklist) != 3 {
		t.Errorf("checklist length = %d, want 3", len(pack.PreLearningChecklist))
	}
	if len(pack.TestQuestions) != 1 || pack.TestQuestions[0].CorrectIndex != 0 {
		t.Errorf("unexpected questions: %+v", pack.TestQuestions)
	}
}

func TestEnhance_NilProvider(t *testing.T) {
	e := NewEnhancer(nil, DefaultConfig(), nil)

	pack := e.Enhance(context.Background(), testVideo())
	if !strings.Contains(pack.BriefSummary, "Go Concurrency Patterns") {
		t.Errorf("fallback summary should mention the title, got %q", pack.BriefSummary)
	}
	if len(pack.PreLearningChecklist) != 3 {
		t.Errorf("fallback checklist length = %d, want 3", len(pack.PreLearningChecklist))
	}
	if len(pack.TestQuestions) != 1 {
		t.Fatalf("fallback question count = %d, want 1", len(pack.TestQuestions))
	}
	q := pack.TestQuestions[0]
	if len(q.Options) != 4 || q.CorrectIndex != 0 {
		t.Errorf("fallback question malformed: %+v", q)
	}
}

func TestEnhance_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	e := NewEnhancer(mock, DefaultConfig(), nil)

	pack := e.Enhance(context.Background(), testVideo())
	want := FallbackPack("Go Concurrency Patterns")
	if pack.BriefSummary != want.BriefSummary {
		t.Errorf("expected fallback pack on provider error")
	}
}

func TestEnhance_UnparseableFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Sure! Here is your content pack:`),
	})
	e := NewEnhancer(mock, DefaultConfig(), nil)

	pack := e.Enhance(context.Background(), testVideo())
	if pack.MentalModel != FallbackPack("x").MentalModel {
		t.Errorf("expected fallback mental model, got %q", pack.MentalModel)
	}
}

func TestEnhance_StripsEmphasis(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"brief_summary": "This is **very** important.",
			"pre_learning_checklist": [],
			"test_questions": [],
			"mental_model": "__Like__ a pipeline."
		}`),
	})
	e := NewEnhancer(mock, DefaultConfig(), nil)

	pack := e.Enhance(context.Background(), testVideo())
	if pack.BriefSummary != "This is very important." {
		t.Errorf("summary emphasis not stripped: %q", pack.BriefSummary)
	}
	if pack.MentalModel != "Like a pipeline." {
		t.Errorf("mental model emphasis not stripped: %q", pack.MentalModel)
	}
}

func TestRepairQuestions(t *testing.T) {
	one := 1
	bad := 9
	raw := []questionOutput{
		{Question: "valid", Options: []string{"a", "b", "c", "d"}, CorrectIndex: &one},
		{Question: "from answer", Options: []string{"a", "b", "c", "d"}, Answer: "c"},
		{Question: "no hint", Options: []string{"a", "b", "c", "d"}},
		{Question: "out of range", Options: []string{"a", "b"}, CorrectIndex: &bad},
		{Question: "answer not an option", Options: []string{"a", "b"}, Answer: "z"},
	}

	got := repairQuestions(raw)
	wantIdx := []int{1, 2, 0, 0, 0}
	if len(got) != len(wantIdx) {
		t.Fatalf("repaired %d questions, want %d", len(got), len(wantIdx))
	}
	for i, q := range got {
		if q.CorrectIndex != wantIdx[i] {
			t.Errorf("question %d index = %d, want %d", i, q.CorrectIndex, wantIdx[i])
		}
	}
}

func TestBuildEnhancerUserMessage_TruncatesDescription(t *testing.T) {
	video := testVideo()
	video.Description = strings.Repeat("x", 5000)

	msg := buildEnhancerUserMessage(video)
	if strings.Contains(msg, strings.Repeat("x", descriptionContextLimit+1)) {
		t.Error("description was not truncated")
	}
	if !strings.Contains(msg, video.Title) {
		t.Error("message should carry the video title")
	}
}
