package scoring

import (
	"math"
	"testing"

	"github.com/learnlens/learnlens/internal/analysis"
	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/discovery"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateLQS(t *testing.T) {
	tests := []struct {
		name  string
		video discovery.VideoCandidate
		res   analysis.Result
		level curriculum.Level
		want  float64
	}{
		{
			// 22.5 + 18 + 19 + 12.75 + 8 + 9
			name:  "best case",
			video: discovery.VideoCandidate{Title: "Medium level Go tutorial"},
			res:   analysis.Result{ClarityRating: 9.0, NoiseLevel: analysis.GradeLow},
			level: curriculum.LevelMedium,
			want:  89.25,
		},
		{
			// 22.5 + 15 + 14 + 12.75 + 8 + 6
			name:  "base case",
			video: discovery.VideoCandidate{Title: "Conference talk"},
			res:   analysis.Result{ClarityRating: 7.5, NoiseLevel: analysis.GradeMedium},
			level: curriculum.LevelHigh,
			want:  78.25,
		},
		{
			// 22.5 + 15 + 19 + 12.75 + 8 + 9
			name:  "level match only",
			video: discovery.VideoCandidate{Title: "high performance computing"},
			res:   analysis.Result{ClarityRating: 7.5, NoiseLevel: analysis.GradeLow},
			level: curriculum.LevelHigh,
			want:  86.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateLQS(tt.video, tt.res, tt.level)
			if !approxEqual(got, tt.want) {
				t.Errorf("CalculateLQS = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateLQS_Bounds(t *testing.T) {
	video := discovery.VideoCandidate{Title: "anything"}
	for _, clarity := range []float64{0, 7.5, 9.0, 10.0} {
		res := analysis.Result{ClarityRating: clarity, NoiseLevel: analysis.GradeLow}
		got := CalculateLQS(video, res, curriculum.LevelLow)
		if got < 0 || got > 100 {
			t.Errorf("LQS out of range: %v (clarity %v)", got, clarity)
		}
	}
}

func TestRecommend(t *testing.T) {
	candidates := []ScoredVideo{
		{Video: discovery.VideoCandidate{ID: "a"}, LQS: 70},
		{Video: discovery.VideoCandidate{ID: "b"}, LQS: 95},
		{Video: discovery.VideoCandidate{ID: "c"}, LQS: 80},
	}

	best := Recommend(candidates)
	if best == nil {
		t.Fatal("expected a recommendation")
	}
	if best.Video.ID != "b" || best.LQS != 95 {
		t.Errorf("recommended %q (%v), want b (95)", best.Video.ID, best.LQS)
	}
}

func TestRecommend_Empty(t *testing.T) {
	if got := Recommend(nil); got != nil {
		t.Errorf("expected nil for empty input, got %+v", got)
	}
}

func TestRecommend_TieGoesToFirst(t *testing.T) {
	candidates := []ScoredVideo{
		{Video: discovery.VideoCandidate{ID: "first"}, LQS: 80},
		{Video: discovery.VideoCandidate{ID: "second"}, LQS: 80},
	}

	best := Recommend(candidates)
	if best.Video.ID != "first" {
		t.Errorf("tie went to %q, want first", best.Video.ID)
	}
}
