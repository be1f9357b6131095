package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Before  int64  // sequence < Before
	Purpose string // filter by purpose ("" = all)
}

// LLMRequestEventData captures one generative-service call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token consumption for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// PathRequestEventData captures one end-to-end path construction.
type PathRequestEventData struct {
	Topic         string
	Level         string
	StepsPlanned  int
	StepsReturned int
	DurationMs    int64
	Success       bool
	ErrorMessage  string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records a generative-service call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendPathRequest records a completed (or failed) path construction.
	AppendPathRequest(ctx context.Context, data PathRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per pipeline stage.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
