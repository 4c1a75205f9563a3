package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DeyYed/DeyFinder/internal/analyzer"
	"github.com/DeyYed/DeyFinder/internal/dtos"
	"github.com/DeyYed/DeyFinder/internal/extract"
)

const snippetChars = 300

type ResumeHandler struct {
	Analyzer *analyzer.Analyzer
}

// NewResumeHandler creates the handler with dependencies
func NewResumeHandler(a *analyzer.Analyzer) *ResumeHandler {
	return &ResumeHandler{Analyzer: a}
}

// AnalyzeResume is the POST /resume/analyze endpoint
func (h *ResumeHandler) AnalyzeResume(c *gin.Context) {
	var req dtos.AnalyzeResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Message: "Invalid request body", Details: err.Error()})
		return
	}

	data, err := decodeBase64(req.Base64Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Message: "base64Data is not valid base64", Details: err.Error()})
		return
	}

	text, err := extract.Text(req.FileName, req.FileType, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Message: "Failed to extract resume text", Details: err.Error()})
		return
	}
	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Message: "The uploaded file contains no readable text"})
		return
	}

	result, err := h.Analyzer.Analyze(c.Request.Context(), text, req.CustomPrompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Message: "Resume analysis failed", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dtos.AnalyzeResumeResponse{
		ResumeTextSnippet: snippet(text),
		Analysis:          result,
	})
}

// decodeBase64 tolerates data-URL payloads ("data:application/pdf;base64,...")
// since that is what FileReader hands the frontend.
func decodeBase64(s string) ([]byte, error) {
	if i := strings.Index(s, "base64,"); i >= 0 {
		s = s[i+len("base64,"):]
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(s))
}

func snippet(text string) string {
	if len(text) <= snippetChars {
		return text
	}
	return text[:snippetChars] + "..."
}
