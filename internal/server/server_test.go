package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/pipeline"
)

// stubBuilder is a canned PathBuilder.
type stubBuilder struct {
	path      *pipeline.LearningPath
	err       error
	gotTopic  string
	gotLevel  curriculum.Level
	callCount int
}

func (s *stubBuilder) CreateLearningPath(_ context.Context, topic string, level curriculum.Level) (*pipeline.LearningPath, error) {
	s.callCount++
	s.gotTopic = topic
	s.gotLevel = level
	if s.err != nil {
		return nil, s.err
	}
	return s.path, nil
}

func doRequest(t *testing.T, builder PathBuilder, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	srv := New(":0", builder, nil)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCreatePath_OK(t *testing.T) {
	builder := &stubBuilder{
		path: &pipeline.LearningPath{
			Topic: "Go",
			Path: []pipeline.LearningPathStep{
				{ID: "v1", Title: "Go Tutorial", StepName: "Go Basics", LQS: 82.5},
			},
		},
	}

	rec := doRequest(t, builder, http.MethodPost, "/api/create-path",
		`{"topic": "Go", "level": "Medium"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Go", builder.gotTopic)
	assert.Equal(t, curriculum.LevelMedium, builder.gotLevel)
	assert.Contains(t, rec.Body.String(), `"topic":"Go"`)
	assert.Contains(t, rec.Body.String(), `"step_name":"Go Basics"`)
}

func TestCreatePath_EmptyPathStillOK(t *testing.T) {
	builder := &stubBuilder{
		path: &pipeline.LearningPath{Topic: "Go", Path: []pipeline.LearningPathStep{}},
	}

	rec := doRequest(t, builder, http.MethodPost, "/api/create-path",
		`{"topic": "Go", "level": "Low"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":[]`)
}

func TestCreatePath_BadJSON(t *testing.T) {
	builder := &stubBuilder{}

	rec := doRequest(t, builder, http.MethodPost, "/api/create-path", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "detail")
	assert.Zero(t, builder.callCount)
}

func TestCreatePath_MissingFields(t *testing.T) {
	builder := &stubBuilder{}

	rec := doRequest(t, builder, http.MethodPost, "/api/create-path", `{"topic": "Go"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, builder.callCount)
}

func TestCreatePath_PipelineError(t *testing.T) {
	builder := &stubBuilder{err: errors.New("boom")}

	rec := doRequest(t, builder, http.MethodPost, "/api/create-path",
		`{"topic": "Go", "level": "High"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"detail":"boom"`)
}

func TestCreatePath_UnknownLevelPassedThrough(t *testing.T) {
	builder := &stubBuilder{
		path: &pipeline.LearningPath{Topic: "Go", Path: []pipeline.LearningPathStep{}},
	}

	rec := doRequest(t, builder, http.MethodPost, "/api/create-path",
		`{"topic": "Go", "level": "Beginner"}`)

	// Unknown levels are not rejected here: the planner handles them with
	// its mixed progression.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, curriculum.Level("Beginner"), builder.gotLevel)
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, &stubBuilder{}, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRequestIDHeader(t *testing.T) {
	builder := &stubBuilder{
		path: &pipeline.LearningPath{Topic: "Go", Path: []pipeline.LearningPathStep{}},
	}

	rec := doRequest(t, builder, http.MethodPost, "/api/create-path",
		`{"topic": "Go", "level": "Low"}`)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
