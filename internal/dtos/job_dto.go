package dtos

import "github.com/DeyYed/DeyFinder/internal/models"

type JobSearchRequest struct {
	Queries []models.JobQuery `json:"queries" binding:"required"`

	// Optional Fields
	Location string `json:"location"`
	Remote   bool   `json:"remote"`
}

type JobSearchResponse struct {
	Jobs []models.JobPosting `json:"jobs"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
