package discovery

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/learnlens/learnlens/internal/curriculum"
)

// maxSearchResults is how many candidates one search fetches; extras allow
// the exclusion filter room to work.
const maxSearchResults = 10

// Service finds the best available video for a curriculum step. A missing
// index (no credential) or any index failure yields "no candidate", which
// the orchestrator treats as a step skip rather than an error.
type Service struct {
	index VideoIndex // nil when no credential is configured
	log   *zap.Logger
}

// NewService creates a discovery service. A nil index is allowed and makes
// every lookup return no candidate.
func NewService(index VideoIndex, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{index: index, log: log}
}

// FetchBestForStep returns the best unique video for the step, or nil when
// the index is unavailable or returns nothing.
//
// Selection walks the index's relevance order and picks the first hit not
// in excludeIDs. When every hit is excluded it still returns the first hit:
// a step with some video beats a dropped step, even at the cost of a
// duplicate ID in the path. Callers relying on strict dedup should know
// about this escape hatch.
func (s *Service) FetchBestForStep(ctx context.Context, step curriculum.Step, excludeIDs map[string]bool) *VideoCandidate {
	if s.index == nil {
		return nil
	}

	query := fmt.Sprintf("%s %s tutorial", step.Focus, step.StepTitle)

	hits, err := s.index.Search(ctx, query, maxSearchResults)
	if err != nil {
		s.log.Warn("video search failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	if len(hits) == 0 {
		return nil
	}

	best := hits[0]
	for _, hit := range hits {
		if !excludeIDs[hit.ID] {
			best = hit
			break
		}
	}

	detail, err := s.index.Details(ctx, best.ID)
	if err != nil {
		s.log.Warn("video detail lookup failed", zap.String("id", best.ID), zap.Error(err))
		return nil
	}

	return &VideoCandidate{
		ID:           best.ID,
		Title:        detail.Title,
		Description:  detail.Description,
		ThumbnailURL: detail.ThumbnailURL,
		ChannelTitle: detail.ChannelTitle,
	}
}
