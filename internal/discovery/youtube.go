package discovery

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeIndex implements VideoIndex against the YouTube Data API v3.
// Results are constrained to embeddable, English-relevance videos.
type YouTubeIndex struct {
	svc *youtube.Service
}

// NewYouTubeIndex creates an index client bound to the given API key.
func NewYouTubeIndex(ctx context.Context, apiKey string) (*YouTubeIndex, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key is required")
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create YouTube service: %w", err)
	}

	return &YouTubeIndex{svc: svc}, nil
}

func (y *YouTubeIndex) Search(ctx context.Context, query string, max int64) ([]SearchHit, error) {
	resp, err := y.svc.Search.List([]string{"id", "snippet"}).
		Q(query).
		MaxResults(max).
		Type("video").
		VideoEmbeddable("true").
		RelevanceLanguage("en").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	hits := make([]SearchHit, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		hit := SearchHit{ID: item.Id.VideoId}
		if item.Snippet != nil {
			hit.Title = item.Snippet.Title
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func (y *YouTubeIndex) Details(ctx context.Context, id string) (*VideoDetail, error) {
	resp, err := y.svc.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(id).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube videos.list: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s not found", id)
	}

	snippet := resp.Items[0].Snippet
	if snippet == nil {
		return nil, fmt.Errorf("video %s has no snippet", id)
	}

	detail := &VideoDetail{
		Title:        snippet.Title,
		Description:  snippet.Description,
		ChannelTitle: snippet.ChannelTitle,
	}
	if snippet.Thumbnails != nil && snippet.Thumbnails.High != nil {
		detail.ThumbnailURL = snippet.Thumbnails.High.Url
	}
	return detail, nil
}
