// Package ui exposes the sync service over HTTP: trigger a run, inspect
// the latest run, read its report.
package ui

import (
	"net/http"
	"sync"

	"skillstage/app"
	"skillstage/internal"
	"skillstage/models"
	"skillstage/ports"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Server represents the web server for the skills sync service
type Server struct {
	router      *gin.Engine
	syncService *app.SyncService
	runs        ports.RunRepository // nil falls back to the in-memory run
	logger      *internal.Logger

	mu      sync.RWMutex
	lastRun *models.SyncRun
}

// NewServer creates a new web server instance
func NewServer(syncService *app.SyncService, runs ports.RunRepository, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:      gin.Default(),
		syncService: syncService,
		runs:        runs,
		logger:      logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.POST("/api/sync", s.handleSync)
	s.router.GET("/api/runs/latest", s.handleLatestRun)
	s.router.GET("/runs/latest/report", s.handleLatestReport)
}

// Start runs the HTTP server on the given address.
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleSync executes a full sync run and returns its audit record.
func (s *Server) handleSync(c *gin.Context) {
	run, err := s.syncService.Run(c.Request.Context())
	if run != nil {
		s.mu.Lock()
		s.lastRun = run
		s.mu.Unlock()
	}
	if err != nil {
		s.logger.Error("sync request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"run":   run,
		})
		return
	}
	c.JSON(http.StatusOK, run)
}

func (s *Server) latestRun(c *gin.Context) *models.SyncRun {
	if s.runs != nil {
		run, err := s.runs.Latest(c.Request.Context())
		if err == nil {
			return run
		}
		s.logger.Debug("no persisted run available: %v", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

func (s *Server) handleLatestRun(c *gin.Context) {
	run := s.latestRun(c)
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no sync run recorded yet"})
		return
	}
	c.JSON(http.StatusOK, run)
}

// handleLatestReport renders the latest run's markdown report as HTML.
func (s *Server) handleLatestReport(c *gin.Context) {
	run := s.latestRun(c)
	if run == nil {
		c.String(http.StatusNotFound, "no sync run recorded yet")
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	html := markdown.ToHTML([]byte(run.Report), p, renderer)

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
