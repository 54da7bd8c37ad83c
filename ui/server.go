// Package ui is the public HTTP surface: operator login, sheet upload and
// deletion, and the attendance query endpoints.
package ui

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"messtrack/app"
	"messtrack/domain/core"
	"messtrack/internal/config"
)

// Server represents the web server for the attendance API
type Server struct {
	router  *gin.Engine
	ingest  *app.IngestService
	query   *app.QueryService
	summary *app.SummaryService
	auth    *Authenticator

	maxFileBytes int64
	tempDir      string
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config, ingest *app.IngestService, query *app.QueryService, summary *app.SummaryService) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:       gin.Default(),
		ingest:       ingest,
		query:        query,
		summary:      summary,
		auth:         NewAuthenticator(cfg.Auth),
		maxFileBytes: cfg.Upload.MaxFileBytes,
		tempDir:      cfg.Upload.TempDir,
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.POST("/api/login", s.handleLogin)

	// Read path is open; lookups by roll number are for the students
	// themselves.
	s.router.GET("/api/attendance", s.handleAttendance)
	s.router.GET("/api/sheets", s.handleListSheets)
	s.router.GET("/api/sheets/summary", s.handleSheetSummary)

	// Mutations require an operator session.
	protected := s.router.Group("/api", s.auth.Middleware())
	protected.POST("/sheets/upload", s.handleUpload)
	protected.DELETE("/sheets", s.handleDeleteSheet)
}

// Handler exposes the router for the HTTP server in main.
func (s *Server) Handler() http.Handler {
	return s.router
}

// respondError maps domain errors onto HTTP statuses. Per-file ingestion
// errors never reach here; they stay inside the per-file results.
func respondError(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case core.IsInputError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrPersistence):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
