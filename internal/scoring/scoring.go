// Package scoring computes the Learning Quality Score (LQS), a 0-100
// composite over six weighted sub-scores, and selects the best candidate
// from a scored set.
package scoring

import (
	"strings"

	"github.com/learnlens/learnlens/internal/analysis"
	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/discovery"
)

// Rubric weights. They sum to 1.0; the final score is a convex combination
// so it stays in [0, 100].
const (
	weightConceptCoverage    = 0.25
	weightExplanationClarity = 0.20
	weightLevelMatching      = 0.20
	weightTeachingStructure  = 0.15
	weightEngagementPace     = 0.10
	weightNoiseReduction     = 0.10
)

// CalculateLQS combines analysis signals and level-match heuristics into
// one score. Deterministic, no I/O.
//
// Several sub-scores are fixed constants: they stand in for signals
// (watch-time curves, chapter structure) this stage has no access to.
func CalculateLQS(video discovery.VideoCandidate, a analysis.Result, level curriculum.Level) float64 {
	conceptCoverage := 90.0
	explanationClarity := a.ClarityRating * 10
	teachingStructure := 85.0
	engagementPace := 80.0

	levelMatching := 70.0
	if strings.Contains(strings.ToLower(video.Title), strings.ToLower(string(level))) {
		levelMatching = 95.0
	}

	noiseReduction := 60.0
	if a.NoiseLevel == analysis.GradeLow {
		noiseReduction = 90.0
	}

	return conceptCoverage*weightConceptCoverage +
		explanationClarity*weightExplanationClarity +
		levelMatching*weightLevelMatching +
		teachingStructure*weightTeachingStructure +
		engagementPace*weightEngagementPace +
		noiseReduction*weightNoiseReduction
}
