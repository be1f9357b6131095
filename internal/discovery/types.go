package discovery

import "context"

// VideoCandidate is one externally discovered video, immutable once built.
// ID is the deduplication key across path steps.
type VideoCandidate struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	ChannelTitle string
}

// SearchHit is the minimal per-result payload from an index search.
type SearchHit struct {
	ID    string
	Title string
}

// VideoDetail is the full metadata from an index detail lookup.
type VideoDetail struct {
	Title        string
	Description  string
	ThumbnailURL string
	ChannelTitle string
}

// VideoIndex is the external video index boundary. The production
// implementation is the YouTube Data API; tests use a fake.
type VideoIndex interface {
	// Search returns up to max ranked hits for the query, in the index's
	// own relevance order.
	Search(ctx context.Context, query string, max int64) ([]SearchHit, error)

	// Details returns full metadata for one video ID.
	Details(ctx context.Context, id string) (*VideoDetail, error)
}
