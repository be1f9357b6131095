package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/learnlens/learnlens/internal/config"
	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/discovery"
	"github.com/learnlens/learnlens/internal/enhance"
	"github.com/learnlens/learnlens/internal/intent"
	"github.com/learnlens/learnlens/internal/llm"
	"github.com/learnlens/learnlens/internal/pipeline"
	"github.com/learnlens/learnlens/internal/store"
)

// buildOrchestrator wires the full pipeline from the environment. Every
// external dependency is optional: a missing store, LLM key, or video key
// degrades the matching stage rather than failing startup. The returned
// cleanup closes whatever was opened.
func buildOrchestrator(cmd *cobra.Command, log *zap.Logger) (*pipeline.Orchestrator, func(), error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var st *store.Store
	var events store.EventRepo

	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		st, err = store.Open(dbPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "event store unavailable:", err)
		fmt.Fprintln(os.Stderr, "Telemetry will not be recorded.")
	} else {
		events, err = st.EventRepo()
		if err != nil {
			fmt.Fprintln(os.Stderr, "event store unavailable:", err)
			events = nil
		}
	}

	var provider llm.Provider
	p, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Curriculum and enhancement will use fallback content.")
	} else {
		provider = p
	}

	var index discovery.VideoIndex
	if key := config.YouTubeAPIKey(); key != "" {
		idx, err := discovery.NewYouTubeIndex(ctx, key)
		if err != nil {
			fmt.Fprintln(os.Stderr, "video index unavailable:", err)
		} else {
			index = idx
		}
	} else {
		fmt.Fprintln(os.Stderr, "YOUTUBE_API_KEY not set; video discovery disabled.")
	}

	orch := pipeline.New(pipeline.Options{
		Planner:   curriculum.NewPlanner(provider, curriculum.DefaultConfig(), log),
		Discovery: discovery.NewService(index, log),
		Enhancer:  enhance.NewEnhancer(provider, enhance.DefaultConfig(), log),
		Intents:   intent.NewAnalyzer(provider, log),
		Events:    events,
		Log:       log,
	})

	cleanup := func() {
		if st != nil {
			st.Close()
		}
	}
	return orch, cleanup, nil
}
