package repositories

import (
	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/models"
)

// HeadshotRepository handles database operations for headshots
type HeadshotRepository struct{}

// NewHeadshotRepository creates a new headshot repository instance
func NewHeadshotRepository() *HeadshotRepository {
	return &HeadshotRepository{}
}

// Create inserts a new headshot into the database
func (r *HeadshotRepository) Create(headshot models.Headshot) (models.Headshot, error) {
	result := database.DB.Create(&headshot)
	return headshot, result.Error
}

// FindByID retrieves a headshot by its ID
func (r *HeadshotRepository) FindByID(id string) (models.Headshot, error) {
	var headshot models.Headshot
	result := database.DB.First(&headshot, "id = ?", id)
	return headshot, result.Error
}

// FindByProjectID retrieves all headshots of a project in generation order
func (r *HeadshotRepository) FindByProjectID(projectID string) ([]models.Headshot, error) {
	var headshots []models.Headshot
	result := database.DB.Where("project_id = ?", projectID).
		Order("created_at ASC").Find(&headshots)
	return headshots, result.Error
}

// FindGeneratedByProjectID retrieves the non-preview headshots of a project
// in generation order. Preview shots never participate in top-pick selection.
func (r *HeadshotRepository) FindGeneratedByProjectID(projectID string) ([]models.Headshot, error) {
	var headshots []models.Headshot
	result := database.DB.Where("project_id = ? AND is_preview = ?", projectID, false).
		Order("created_at ASC").Find(&headshots)
	return headshots, result.Error
}

// CountGeneratedByProjectID counts the non-preview headshots of a project
func (r *HeadshotRepository) CountGeneratedByProjectID(projectID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Headshot{}).
		Where("project_id = ? AND is_preview = ?", projectID, false).Count(&count)
	return count, result.Error
}

// Update modifies an existing headshot
func (r *HeadshotRepository) Update(headshot models.Headshot) error {
	result := database.DB.Save(&headshot)
	return result.Error
}

// MarkTopPick flags a headshot as a top pick with the given quality score
func (r *HeadshotRepository) MarkTopPick(id string, qualityScore float64) error {
	updates := map[string]interface{}{
		"is_top_pick":   true,
		"quality_score": qualityScore,
	}
	result := database.DB.Model(&models.Headshot{}).
		Where("id = ?", id).
		Updates(updates)
	return result.Error
}
