// Package server serves the portfolio page and its assets over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmj2097/portfolio/internal/config"
	"github.com/jmj2097/portfolio/internal/page"
	"github.com/jmj2097/portfolio/internal/portfolio"
	"github.com/jmj2097/portfolio/web"
	"go.uber.org/zap"
)

const (
	healthPath      = "/healthz"
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	cfg     config.Config
	pages   *page.Renderer
	entries []portfolio.Entry
	logger  *zap.SugaredLogger
	engine  *gin.Engine
}

// New wires the routes. entries must already be validated.
func New(cfg config.Config, pages *page.Renderer, entries []portfolio.Entry, logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	gin.SetMode(cfg.GinMode)

	engine := gin.New()
	engine.Use(
		RequestID(),
		RequestLogging(logger, healthPath),
		Recovery(logger),
	)

	s := &Server{
		cfg:     cfg,
		pages:   pages,
		entries: entries,
		logger:  logger,
		engine:  engine,
	}
	s.setRoutes()
	return s
}

func (s *Server) setRoutes() {
	s.engine.GET("/", s.indexHandler)
	s.engine.HEAD("/", s.indexHandler)
	s.engine.GET(healthPath, s.healthHandler)

	if s.cfg.StaticDir != "" {
		s.engine.Static("/static", s.cfg.StaticDir)
	} else {
		s.engine.StaticFS("/static", http.FS(web.Static()))
	}
	s.engine.Static("/media", s.cfg.MediaDir)
}

func (s *Server) indexHandler(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.pages.Render(&buf, s.entries); err != nil {
		s.logger.Errorw("failed to render page",
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
		c.String(http.StatusInternalServerError, "Failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "entries": len(s.entries)})
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infow("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Infow("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}
