package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "path-plan", InputTokens: 120, OutputTokens: 340, LatencyMs: 900, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "enhance", InputTokens: 200, OutputTokens: 500, LatencyMs: 1100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "enhance", InputTokens: 50, OutputTokens: 0, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}

	// Newest first.
	if got[0].Purpose != "enhance" || got[0].Success {
		t.Errorf("newest event = %+v, want the failed enhance call", got[0])
	}

	// Sequence numbers strictly increase with append order.
	if !(got[2].Sequence < got[1].Sequence && got[1].Sequence < got[0].Sequence) {
		t.Errorf("sequences not ordered: %d, %d, %d",
			got[2].Sequence, got[1].Sequence, got[0].Sequence)
	}
}

func TestQueryLLMEvents_Filters(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, purpose := range []string{"path-plan", "enhance", "enhance", "intent"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: purpose, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "enhance"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Errorf("purpose filter returned %d events, want 2", len(byPurpose))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit returned %d events, want 1", len(limited))
	}
}

func TestGetLLMEvent(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "path-plan",
		Success:      true,
		RequestBody:  `{"system": "plan"}`,
		ResponseBody: `[{"step_title": "x"}]`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil || len(all) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(all))
	}

	e, err := repo.GetLLMEvent(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event")
	}
	if e.RequestBody == "" || e.ResponseBody == "" {
		t.Errorf("bodies not persisted: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "path-plan", InputTokens: 100, OutputTokens: 300, LatencyMs: 1000, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "enhance", InputTokens: 10, OutputTokens: 20, LatencyMs: 500, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "enhance", InputTokens: 30, OutputTokens: 40, LatencyMs: 1500, Success: true},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}

	byPurpose := make(map[string]LLMUsage, len(usage))
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}

	enhance, ok := byPurpose["enhance"]
	if !ok {
		t.Fatal("missing enhance usage")
	}
	if enhance.Calls != 2 || enhance.InputTokens != 40 || enhance.OutputTokens != 60 {
		t.Errorf("enhance usage = %+v", enhance)
	}
	if enhance.AvgLatencyMs != 1000 {
		t.Errorf("enhance avg latency = %d, want 1000", enhance.AvgLatencyMs)
	}

	plan := byPurpose["path-plan"]
	if plan.Calls != 1 || plan.InputTokens != 100 {
		t.Errorf("path-plan usage = %+v", plan)
	}
}

func TestAppendPathRequest(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	err := repo.AppendPathRequest(ctx, PathRequestEventData{
		Topic:         "Go",
		Level:         "Medium",
		StepsPlanned:  3,
		StepsReturned: 2,
		DurationMs:    4200,
		Success:       true,
	})
	if err != nil {
		t.Fatalf("append path request: %v", err)
	}
}
