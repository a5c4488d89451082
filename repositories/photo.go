package repositories

import (
	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/models"
)

// PhotoRepository handles database operations for photos
type PhotoRepository struct{}

// NewPhotoRepository creates a new photo repository instance
func NewPhotoRepository() *PhotoRepository {
	return &PhotoRepository{}
}

// Create inserts a new photo into the database
func (r *PhotoRepository) Create(photo models.Photo) (models.Photo, error) {
	result := database.DB.Create(&photo)
	return photo, result.Error
}

// FindByProjectID retrieves all photos of a project in upload order
func (r *PhotoRepository) FindByProjectID(projectID string) ([]models.Photo, error) {
	var photos []models.Photo
	result := database.DB.Where("project_id = ?", projectID).Order("created_at ASC").Find(&photos)
	return photos, result.Error
}

// FindApprovedByProjectID retrieves the photos approved for training
func (r *PhotoRepository) FindApprovedByProjectID(projectID string) ([]models.Photo, error) {
	var photos []models.Photo
	result := database.DB.Where("project_id = ? AND approved = ?", projectID, true).
		Order("created_at ASC").Find(&photos)
	return photos, result.Error
}

// CountByProjectID counts the photos of a project
func (r *PhotoRepository) CountByProjectID(projectID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Photo{}).
		Where("project_id = ?", projectID).Count(&count)
	return count, result.Error
}

// UpdateAnalysis overwrites the analysis fields of a photo after a
// re-analysis pass
func (r *PhotoRepository) UpdateAnalysis(id string, score float64, lighting, background, expression, angle, focus string, approved bool) error {
	updates := map[string]interface{}{
		"quality_score": score,
		"lighting":      lighting,
		"background":    background,
		"expression":    expression,
		"angle":         angle,
		"focus":         focus,
		"approved":      approved,
	}
	result := database.DB.Model(&models.Photo{}).
		Where("id = ?", id).
		Updates(updates)
	return result.Error
}
