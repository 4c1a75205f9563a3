package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DeyYed/DeyFinder/internal/dtos"
	"github.com/DeyYed/DeyFinder/internal/synth"
)

type JobHandler struct {
	Engine *synth.Engine
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(engine *synth.Engine) *JobHandler {
	return &JobHandler{Engine: engine}
}

// SearchJobs is the POST /jobs/search endpoint. The only client-visible
// failure is an empty query list; AI trouble degrades inside the engine.
func (h *JobHandler) SearchJobs(c *gin.Context) {
	var req dtos.JobSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Message: "Invalid request body", Details: err.Error()})
		return
	}
	if len(req.Queries) == 0 {
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Message: "queries must not be empty"})
		return
	}

	jobs := h.Engine.SynthesizeJobs(c.Request.Context(), req.Queries, strings.TrimSpace(req.Location), req.Remote)
	c.JSON(http.StatusOK, dtos.JobSearchResponse{Jobs: jobs})
}
