package repositories

import (
	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// FindByUserID retrieves all projects belonging to a user
func (r *ProjectRepository) FindByUserID(userID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("user_id = ?", userID).Find(&projects)
	return projects, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// UpdateFields applies a partial update to a project row
func (r *ProjectRepository) UpdateFields(id string, updates map[string]interface{}) error {
	result := database.DB.Model(&models.Project{}).
		Where("id = ?", id).
		Updates(updates)
	return result.Error
}

// Delete removes a project and all owned child rows in one transaction
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Headshot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.TrainingModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.CoachingFeedback{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Project{}, "id = ?", id)
		return result.Error
	})
}

// WithChildren loads a project with its photos, headshots, training model
// and coaching feedback
func (r *ProjectRepository) WithChildren(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.
		Preload("Photos").
		Preload("Headshots").
		Preload("TrainingModel").
		Preload("CoachingFeedbacks").
		First(&project, "id = ?", id)
	return project, result.Error
}

// FindWithPagination retrieves projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	page, pageSize int,
	sortBy, sortOrder string,
	userID string,
	isAdmin bool,
	search string) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	// Non-admin callers only ever see their own projects
	if !isAdmin && userID != "" {
		db = db.Where("user_id = ?", userID)
	}

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("LOWER(name) LIKE LOWER(?)", searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}

// DB returns the database instance
func (r *ProjectRepository) DB() *gorm.DB {
	return database.DB
}
