package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/learnlens/learnlens/internal/analysis"
	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/discovery"
	"github.com/learnlens/learnlens/internal/enhance"
	"github.com/learnlens/learnlens/internal/intent"
	"github.com/learnlens/learnlens/internal/scoring"
	"github.com/learnlens/learnlens/internal/store"
)

// Defaults for pack fields the generative path left empty.
const (
	defaultSummary     = "Detailed overview of the current module."
	defaultMentalModel = "Foundational concepts for mastery."
)

// Orchestrator drives the end-to-end sequence: plan, then per step discover
// and enhance, strictly in order with no parallelism. Each request owns its
// own exclusion set; no state is shared across requests.
type Orchestrator struct {
	planner   *curriculum.Planner
	discovery *discovery.Service
	enhancer  *enhance.Enhancer
	intents   *intent.Analyzer // optional
	events    store.EventRepo  // optional
	log       *zap.Logger
}

// Options configures an Orchestrator. Planner, Discovery, and Enhancer are
// required; Intents and Events are optional extras.
type Options struct {
	Planner   *curriculum.Planner
	Discovery *discovery.Service
	Enhancer  *enhance.Enhancer
	Intents   *intent.Analyzer
	Events    store.EventRepo
	Log       *zap.Logger
}

// New creates a path orchestrator.
func New(opts Options) *Orchestrator {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		planner:   opts.Planner,
		discovery: opts.Discovery,
		enhancer:  opts.Enhancer,
		intents:   opts.Intents,
		events:    opts.Events,
		log:       log,
	}
}

// CreateLearningPath builds the path for one request. The returned path
// has between 0 and 3 steps: steps whose discovery finds no candidate are
// skipped, never backfilled. Component-level failures degrade inside the
// components; an error here means something the containment boundaries
// did not cover.
func (o *Orchestrator) CreateLearningPath(ctx context.Context, topic string, level curriculum.Level) (*LearningPath, error) {
	start := time.Now()

	planTopic := topic
	if o.intents != nil {
		refined := o.intents.Analyze(ctx, topic, level)
		if refined.RefinedTopic != topic {
			o.log.Info("intent refined topic",
				zap.String("topic", topic), zap.String("refined", refined.RefinedTopic))
		}
		planTopic = refined.RefinedTopic
	}

	roadmap := o.planner.CreatePath(ctx, planTopic, level)

	steps := make([]LearningPathStep, 0, len(roadmap))
	seenIDs := make(map[string]bool, len(roadmap))

	for i, step := range roadmap {
		video := o.discovery.FetchBestForStep(ctx, step, seenIDs)
		if video == nil {
			o.log.Info("no candidate for step, skipping",
				zap.Int("step", i+1), zap.String("focus", step.Focus))
			continue
		}
		seenIDs[video.ID] = true

		pack := o.enhancer.Enhance(ctx, *video)

		signals := analysis.Analyze(video.ID, video.Description)
		lqs := scoring.CalculateLQS(*video, signals, level)

		steps = append(steps, assembleStep(step, *video, lqs, pack))

		o.log.Info("step assembled",
			zap.Int("step", i+1),
			zap.String("video", video.ID),
			zap.Float64("lqs", lqs))
	}

	path := &LearningPath{Topic: topic, Path: steps}
	o.recordEvent(ctx, topic, level, len(roadmap), len(steps), start)
	return path, nil
}

// assembleStep flattens one curriculum step plus its video and pack,
// substituting generic defaults for any pack field left empty.
func assembleStep(step curriculum.Step, video discovery.VideoCandidate, lqs float64, pack enhance.ContentPack) LearningPathStep {
	summary := pack.BriefSummary
	if summary == "" {
		summary = defaultSummary
	}
	mentalModel := pack.MentalModel
	if mentalModel == "" {
		mentalModel = defaultMentalModel
	}
	questions := pack.TestQuestions
	if questions == nil {
		questions = []enhance.QuizQuestion{}
	}
	checklist := pack.PreLearningChecklist
	if checklist == nil {
		checklist = []string{}
	}

	return LearningPathStep{
		ID:          video.ID,
		Title:       video.Title,
		Summary:     summary,
		Channel:     video.ChannelTitle,
		StepName:    step.StepTitle,
		Goal:        step.Goal,
		LQS:         lqs,
		Questions:   questions,
		Checklist:   checklist,
		MentalModel: mentalModel,
	}
}

func (o *Orchestrator) recordEvent(ctx context.Context, topic string, level curriculum.Level, planned, returned int, start time.Time) {
	if o.events == nil {
		return
	}
	err := o.events.AppendPathRequest(ctx, store.PathRequestEventData{
		Topic:         topic,
		Level:         string(level),
		StepsPlanned:  planned,
		StepsReturned: returned,
		DurationMs:    time.Since(start).Milliseconds(),
		Success:       true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log path request event: %v\n", err)
	}
}
