package scoring

import "github.com/learnlens/learnlens/internal/discovery"

// ScoredVideo pairs a candidate with its computed LQS.
type ScoredVideo struct {
	Video discovery.VideoCandidate
	LQS   float64
}

// Recommend returns the highest-scoring candidate, or nil for an empty
// set. Ties go to the earlier candidate, so callers can encode their own
// precedence in the input order.
func Recommend(candidates []ScoredVideo) *ScoredVideo {
	if len(candidates) == 0 {
		return nil
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.LQS > best.LQS {
			best = c
		}
	}
	return &best
}
