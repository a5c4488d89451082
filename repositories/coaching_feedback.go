package repositories

import (
	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/models"
)

// CoachingFeedbackRepository handles database operations for coaching feedback
type CoachingFeedbackRepository struct{}

// NewCoachingFeedbackRepository creates a new coaching feedback repository instance
func NewCoachingFeedbackRepository() *CoachingFeedbackRepository {
	return &CoachingFeedbackRepository{}
}

// CreateBatch inserts a batch of coaching feedback rows
func (r *CoachingFeedbackRepository) CreateBatch(feedbacks []models.CoachingFeedback) ([]models.CoachingFeedback, error) {
	if len(feedbacks) == 0 {
		return feedbacks, nil
	}
	result := database.DB.Create(&feedbacks)
	return feedbacks, result.Error
}

// FindByProjectID retrieves a project's coaching feedback ordered by priority
func (r *CoachingFeedbackRepository) FindByProjectID(projectID string) ([]models.CoachingFeedback, error) {
	var feedbacks []models.CoachingFeedback
	result := database.DB.Where("project_id = ?", projectID).
		Order("priority ASC, created_at ASC").Find(&feedbacks)
	return feedbacks, result.Error
}

// MarkResolved flags a coaching feedback row as resolved
func (r *CoachingFeedbackRepository) MarkResolved(id string) error {
	result := database.DB.Model(&models.CoachingFeedback{}).
		Where("id = ?", id).
		Update("resolved", true)
	return result.Error
}
