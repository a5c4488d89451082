package dto

import (
	"github.com/headshot-studio/backend/models"
)

// UploadPhotoRequest represents the request payload for adding a photo.
// The image arrives as a URL; the backend pulls it into its own storage.
type UploadPhotoRequest struct {
	ImageURL string `json:"imageUrl" binding:"required,url"`
}

// AnalyzeResponse represents the aggregate result of a batch photo analysis
type AnalyzeResponse struct {
	QualityScore    float64                   `json:"qualityScore"`
	OverallFeedback string                    `json:"overallFeedback"`
	Summary         string                    `json:"summary"`
	Coaching        []models.CoachingFeedback `json:"coaching"`
}
