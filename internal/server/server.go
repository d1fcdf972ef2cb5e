// Package server exposes the summarizer over HTTP: a small embedded
// single-page UI plus a JSON API.
package server

import (
	"context"
	_ "embed"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nader0889-cyber/smart-summarizer/internal/config"
	"github.com/nader0889-cyber/smart-summarizer/internal/logger"
	"github.com/nader0889-cyber/smart-summarizer/internal/summary"
)

//go:embed static/index.html
var indexHTML []byte

// Runner is the orchestration entry point the handlers call.
type Runner interface {
	Run(ctx context.Context, input, targetLanguage string) (*summary.Result, error)
}

// Pinger reports data-store reachability for the health endpoint.
type Pinger interface {
	Ping() error
}

type Server struct {
	runner         Runner
	db             Pinger
	languages      []config.LanguageOption
	maxUploadBytes int64
	requestTimeout time.Duration
}

type Options struct {
	Runner         Runner
	DB             Pinger // may be nil in tests
	Languages      []config.LanguageOption
	MaxUploadBytes int64
	RequestTimeout time.Duration
	Debug          bool
}

func New(opts Options) *Server {
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 90 * time.Second
	}
	return &Server{
		runner:         opts.Runner,
		db:             opts.DB,
		languages:      opts.Languages,
		maxUploadBytes: opts.MaxUploadBytes,
		requestTimeout: opts.RequestTimeout,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.MaxMultipartMemory = s.maxUploadBytes

	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	{
		api.GET("/languages", s.handleLanguages)
		api.POST("/summarize", s.handleSummarize)
		api.POST("/export", s.handleExport)
	}

	return r
}

// requestLogger logs each request through the shared slog logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		)
	}
}
