package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nader0889-cyber/smart-summarizer/internal/compose"
	"github.com/nader0889-cyber/smart-summarizer/internal/extract"
	"github.com/nader0889-cyber/smart-summarizer/internal/logger"
	"github.com/nader0889-cyber/smart-summarizer/internal/metrics"
	"github.com/nader0889-cyber/smart-summarizer/internal/summary"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (s *Server) handleLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"targets": s.languages})
}

// handleSummarize runs the single summarization action. Input is either
// the "text" form field or an uploaded "file"; the file wins when both
// are present, matching the original tab behavior.
func (s *Server) handleSummarize(c *gin.Context) {
	text := c.PostForm("text")
	targetLanguage := c.PostForm("target_language")

	if header, err := c.FormFile("file"); err == nil {
		if header.Size > s.maxUploadBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				gin.H{"message": fmt.Sprintf("file exceeds the %d MB upload limit", s.maxUploadBytes>>20)})
			return
		}

		file, err := header.Open()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "could not read the uploaded file"})
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "could not read the uploaded file"})
			return
		}

		extracted, err := extract.Extract(data, header.Filename)
		if err != nil || strings.TrimSpace(extracted) == "" {
			// Parse failures and genuinely empty files get the same
			// user-facing warning; the log keeps the distinction.
			metrics.Global.IncrementExtractionFailures()
			logger.Warn("text extraction failed",
				"filename", header.Filename, "size", header.Size, "error", err)
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
				gin.H{"message": "could not extract text from the uploaded file"})
			return
		}
		text = extracted
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.requestTimeout)
	defer cancel()

	result, err := s.runner.Run(ctx, text, targetLanguage)
	if err != nil {
		if errors.Is(err, summary.ErrEmptyInput) {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"message": "please enter text or upload a readable file"})
			return
		}
		logger.Error("summarization failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleExport renders a previously returned result as a PDF or DOCX
// attachment. Composition only runs against an already assembled record,
// so rendering errors are plain 500s.
func (s *Server) handleExport(c *gin.Context) {
	format, err := compose.ParseFormat(c.DefaultQuery("format", "pdf"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var result summary.Result
	if err := c.ShouldBindJSON(&result); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid result payload"})
		return
	}
	if result.Summary == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "result has no summary"})
		return
	}

	buf, err := compose.Compose(&result, format)
	if err != nil {
		logger.Error("document composition failed", "format", format, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	metrics.Global.IncrementDocumentsComposed()

	filename := summary.Filename(result.Title) + format.Extension()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

func (s *Server) handleHealth(c *gin.Context) {
	dbOK := false
	if s.db != nil {
		dbOK = s.db.Ping() == nil
	}

	status := "ok"
	code := http.StatusOK
	if !dbOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": dbOK,
		"metrics":  metrics.Global.GetStats(),
	})
}
