package repositories

import (
	"time"

	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/models"
)

// TrainingModelRepository handles database operations for training models
type TrainingModelRepository struct{}

// NewTrainingModelRepository creates a new training model repository instance
func NewTrainingModelRepository() *TrainingModelRepository {
	return &TrainingModelRepository{}
}

// Create inserts a new training model into the database
func (r *TrainingModelRepository) Create(model models.TrainingModel) (models.TrainingModel, error) {
	result := database.DB.Create(&model)
	return model, result.Error
}

// FindLatestByProjectID retrieves the project's active training model.
// Re-training replaces the association, so the newest row wins.
func (r *TrainingModelRepository) FindLatestByProjectID(projectID string) (models.TrainingModel, error) {
	var model models.TrainingModel
	result := database.DB.Where("project_id = ?", projectID).
		Order("created_at DESC").First(&model)
	return model, result.Error
}

// UpdateProgress copies the provider's reported state onto the row
func (r *TrainingModelRepository) UpdateProgress(id string, status models.TrainingStatus, progress int) error {
	updates := map[string]interface{}{
		"status":   status,
		"progress": progress,
	}
	result := database.DB.Model(&models.TrainingModel{}).
		Where("id = ?", id).
		Updates(updates)
	return result.Error
}

// MarkCompleted records the trained model reference and completion time
func (r *TrainingModelRepository) MarkCompleted(id string, modelRef string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.TrainingStatusCompleted,
		"progress":     100,
		"model_ref":    modelRef,
		"completed_at": &now,
	}
	result := database.DB.Model(&models.TrainingModel{}).
		Where("id = ?", id).
		Updates(updates)
	return result.Error
}

// MarkFailed records the provider's error message
func (r *TrainingModelRepository) MarkFailed(id string, errorMessage string) error {
	updates := map[string]interface{}{
		"status":        models.TrainingStatusFailed,
		"error_message": errorMessage,
	}
	result := database.DB.Model(&models.TrainingModel{}).
		Where("id = ?", id).
		Updates(updates)
	return result.Error
}
