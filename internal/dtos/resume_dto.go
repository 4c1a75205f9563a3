package dtos

import "github.com/DeyYed/DeyFinder/internal/models"

type AnalyzeResumeRequest struct {
	FileName   string `json:"fileName" binding:"required"`
	FileType   string `json:"fileType" binding:"required"`
	Base64Data string `json:"base64Data" binding:"required"`

	// Optional extra guidance appended to the analysis prompt.
	CustomPrompt string `json:"customPrompt"`
}

type AnalyzeResumeResponse struct {
	ResumeTextSnippet string                `json:"resumeTextSnippet"`
	Analysis          models.AnalysisResult `json:"analysis"`
}
