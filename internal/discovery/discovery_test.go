package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/learnlens/learnlens/internal/curriculum"
)

// fakeIndex is a canned VideoIndex for tests.
type fakeIndex struct {
	hits       []SearchHit
	details    map[string]*VideoDetail
	searchErr  error
	detailsErr error
	lastQuery  string
}

func (f *fakeIndex) Search(_ context.Context, query string, max int64) ([]SearchHit, error) {
	f.lastQuery = query
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if int64(len(f.hits)) > max {
		return f.hits[:max], nil
	}
	return f.hits, nil
}

func (f *fakeIndex) Details(_ context.Context, id string) (*VideoDetail, error) {
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	d, ok := f.details[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return d, nil
}

func testStep() curriculum.Step {
	return curriculum.Step{
		StepTitle: "Go Basics",
		Focus:     "go for beginners tutorial",
		Level:     curriculum.LevelLow,
		Goal:      "Understand core concepts.",
	}
}

func threeHitIndex() *fakeIndex {
	return &fakeIndex{
		hits: []SearchHit{{ID: "v1"}, {ID: "v2"}, {ID: "v3"}},
		details: map[string]*VideoDetail{
			"v1": {Title: "First", ChannelTitle: "A"},
			"v2": {Title: "Second", ChannelTitle: "B"},
			"v3": {Title: "Third", ChannelTitle: "C"},
		},
	}
}

func TestFetchBestForStep_FirstHit(t *testing.T) {
	idx := threeHitIndex()
	s := NewService(idx, nil)

	got := s.FetchBestForStep(context.Background(), testStep(), map[string]bool{})
	if got == nil {
		t.Fatal("expected a candidate")
	}
	if got.ID != "v1" || got.Title != "First" {
		t.Errorf("got %+v, want v1/First", got)
	}
}

func TestFetchBestForStep_QueryShape(t *testing.T) {
	idx := threeHitIndex()
	s := NewService(idx, nil)

	s.FetchBestForStep(context.Background(), testStep(), map[string]bool{})
	want := "go for beginners tutorial Go Basics tutorial"
	if idx.lastQuery != want {
		t.Errorf("query = %q, want %q", idx.lastQuery, want)
	}
}

func TestFetchBestForStep_SkipsExcluded(t *testing.T) {
	idx := threeHitIndex()
	s := NewService(idx, nil)

	got := s.FetchBestForStep(context.Background(), testStep(),
		map[string]bool{"v1": true, "v2": true})
	if got == nil || got.ID != "v3" {
		t.Errorf("got %v, want v3", got)
	}
}

func TestFetchBestForStep_AllExcludedReturnsFirst(t *testing.T) {
	idx := threeHitIndex()
	s := NewService(idx, nil)

	// When every hit is already used, the first hit is returned anyway
	// rather than dropping the step.
	got := s.FetchBestForStep(context.Background(), testStep(),
		map[string]bool{"v1": true, "v2": true, "v3": true})
	if got == nil || got.ID != "v1" {
		t.Errorf("got %v, want v1", got)
	}
}

func TestFetchBestForStep_NilIndex(t *testing.T) {
	s := NewService(nil, nil)
	if got := s.FetchBestForStep(context.Background(), testStep(), nil); got != nil {
		t.Errorf("expected nil with no index, got %+v", got)
	}
}

func TestFetchBestForStep_SearchError(t *testing.T) {
	s := NewService(&fakeIndex{searchErr: errors.New("quota exceeded")}, nil)
	if got := s.FetchBestForStep(context.Background(), testStep(), nil); got != nil {
		t.Errorf("expected nil on search error, got %+v", got)
	}
}

func TestFetchBestForStep_EmptyResults(t *testing.T) {
	s := NewService(&fakeIndex{}, nil)
	if got := s.FetchBestForStep(context.Background(), testStep(), nil); got != nil {
		t.Errorf("expected nil on empty results, got %+v", got)
	}
}

func TestFetchBestForStep_DetailsError(t *testing.T) {
	idx := threeHitIndex()
	idx.detailsErr = errors.New("backend error")
	s := NewService(idx, nil)

	if got := s.FetchBestForStep(context.Background(), testStep(), nil); got != nil {
		t.Errorf("expected nil on details error, got %+v", got)
	}
}
