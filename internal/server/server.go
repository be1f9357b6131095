// Package server exposes the learning-path pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/pipeline"
)

// PathBuilder is the single pipeline operation the HTTP layer needs.
type PathBuilder interface {
	CreateLearningPath(ctx context.Context, topic string, level curriculum.Level) (*pipeline.LearningPath, error)
}

// Server wraps a gin engine around the orchestrator.
type Server struct {
	addr     string
	pipeline PathBuilder
	log      *zap.Logger
	engine   *gin.Engine
}

// New builds a server listening on addr.
func New(addr string, p PathBuilder, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{addr: addr, pipeline: p, log: log}
	s.engine = s.buildRouter()
	return s
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains with a short grace period.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type createPathRequest struct {
	Topic string `json:"topic" binding:"required"`
	Level string `json:"level" binding:"required"`
}

func (s *Server) handleCreatePath(c *gin.Context) {
	var req createPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	path, err := s.pipeline.CreateLearningPath(c.Request.Context(), req.Topic, curriculum.Level(req.Level))
	if err != nil {
		s.log.Error("create path failed", zap.String("topic", req.Topic), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, path)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
