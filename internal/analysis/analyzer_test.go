package analysis

import (
	"strings"
	"testing"
)

func TestAnalyze_Deterministic(t *testing.T) {
	a := Analyze("vid1", "A tutorial with an example.")
	b := Analyze("vid1", "A tutorial with an example.")
	if a.ClarityRating != b.ClarityRating || a.Depth != b.Depth || a.NoiseLevel != b.NoiseLevel {
		t.Errorf("same input produced different results: %+v vs %+v", a, b)
	}
}

func TestAnalyze_Depth(t *testing.T) {
	short := Analyze("v", strings.Repeat("x", 500))
	if short.Depth != GradeMedium {
		t.Errorf("500 chars depth = %q, want Medium", short.Depth)
	}

	long := Analyze("v", strings.Repeat("x", 501))
	if long.Depth != GradeHigh {
		t.Errorf("501 chars depth = %q, want High", long.Depth)
	}
}

func TestAnalyze_Clarity(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"A complete TUTORIAL on channels", 9.0},
		{"The definitive Guide to Go", 9.0},
		{"Conference talk recording", 7.5},
		{"", 7.5},
	}

	for _, tt := range tests {
		if got := Analyze("v", tt.text).ClarityRating; got != tt.want {
			t.Errorf("clarity(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestAnalyze_Noise(t *testing.T) {
	quiet := Analyze("v", strings.Repeat("x", 1999))
	if quiet.NoiseLevel != GradeLow {
		t.Errorf("1999 chars noise = %q, want Low", quiet.NoiseLevel)
	}

	noisy := Analyze("v", strings.Repeat("x", 2000))
	if noisy.NoiseLevel != GradeMedium {
		t.Errorf("2000 chars noise = %q, want Medium", noisy.NoiseLevel)
	}
}

func TestAnalyze_Examples(t *testing.T) {
	if !Analyze("v", "includes worked Examples").HasExamples {
		t.Error("expected example detection to be case-insensitive")
	}
	if Analyze("v", "pure theory").HasExamples {
		t.Error("false positive on example detection")
	}
}

func TestAnalyze_ConceptFlow(t *testing.T) {
	r := Analyze("v", "anything")
	want := []string{"Introduction", "Theory", "Application", "Conclusion"}
	if len(r.ConceptFlow) != len(want) {
		t.Fatalf("concept flow length = %d, want %d", len(r.ConceptFlow), len(want))
	}
	for i := range want {
		if r.ConceptFlow[i] != want[i] {
			t.Errorf("concept flow[%d] = %q, want %q", i, r.ConceptFlow[i], want[i])
		}
	}
	if r.VideoID != "v" {
		t.Errorf("video id = %q", r.VideoID)
	}
}
