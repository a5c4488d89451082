package services

import (
	"context"
	"errors"
	"log"

	"github.com/headshot-studio/backend/apperrors"
	"github.com/headshot-studio/backend/dto"
	"github.com/headshot-studio/backend/lib/storage"
	"github.com/headshot-studio/backend/models"
	"github.com/headshot-studio/backend/repositories"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo  *repositories.ProjectRepository
	photoRepo    *repositories.PhotoRepository
	headshotRepo *repositories.HeadshotRepository
	store        storage.Store
}

// NewProjectService creates a new project service instance
func NewProjectService(store storage.Store) *ProjectService {
	return &ProjectService{
		projectRepo:  repositories.NewProjectRepository(),
		photoRepo:    repositories.NewPhotoRepository(),
		headshotRepo: repositories.NewHeadshotRepository(),
		store:        store,
	}
}

// getOwnedProject loads a project and enforces row-level ownership.
// Ownership mismatches are reported as not-found so the API never leaks
// the existence of other users' projects.
func getOwnedProject(repo *repositories.ProjectRepository, projectID, userID string, isAdmin bool) (models.Project, error) {
	project, err := repo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.NotFound("project")
		}
		return models.Project{}, err
	}

	if !isAdmin && project.UserID != userID {
		return models.Project{}, apperrors.NotFound("project")
	}

	return project, nil
}

// CreateProject creates a new project in the initial uploading status
func (s *ProjectService) CreateProject(userID string, req dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		UserID: userID,
		Name:   req.Name,
		Status: models.ProjectStatusUploading,
	}
	if req.Style != "" {
		project.Style = req.Style
	}
	if req.Background != "" {
		project.Background = req.Background
	}

	return s.projectRepo.Create(project)
}

// GetProjectDetail retrieves a project by ID with its children
func (s *ProjectService) GetProjectDetail(projectID, userID string, isAdmin bool) (models.Project, error) {
	if _, err := getOwnedProject(s.projectRepo, projectID, userID, isAdmin); err != nil {
		return models.Project{}, err
	}

	return s.projectRepo.WithChildren(projectID)
}

// ListProjects retrieves projects with pagination, filtering and sorting.
// Admin can see all projects, regular users only see their own.
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}

	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
		"status":     true,
	}

	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.UserID,
		filter.IsAdmin,
		filter.Search,
	)

	if err != nil {
		return response, err
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// UpdateProject updates a project's display name and generation defaults
func (s *ProjectService) UpdateProject(projectID, userID string, isAdmin bool, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := getOwnedProject(s.projectRepo, projectID, userID, isAdmin)
	if err != nil {
		return models.Project{}, err
	}

	if req.Name != "" {
		project.Name = req.Name
	}
	if req.Style != "" {
		project.Style = req.Style
	}
	if req.Background != "" {
		project.Background = req.Background
	}

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject releases every storage artifact owned by the project, then
// removes the project and its child rows. Storage deletion failures are
// logged and ignored: an orphaned object is preferable to an undeletable
// project.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, userID string, isAdmin bool) error {
	if _, err := getOwnedProject(s.projectRepo, projectID, userID, isAdmin); err != nil {
		return err
	}

	photos, err := s.photoRepo.FindByProjectID(projectID)
	if err != nil {
		return err
	}

	headshots, err := s.headshotRepo.FindByProjectID(projectID)
	if err != nil {
		return err
	}

	var publicIDs []string
	for _, photo := range photos {
		if photo.PublicID != "" {
			publicIDs = append(publicIDs, photo.PublicID)
		}
	}
	for _, headshot := range headshots {
		if headshot.PublicID != "" {
			publicIDs = append(publicIDs, headshot.PublicID)
		}
	}

	for _, publicID := range publicIDs {
		if err := s.store.Delete(ctx, publicID); err != nil {
			log.Printf("Warning: failed to delete storage artifact %s: %v", publicID, err)
		}
	}

	return s.projectRepo.Delete(projectID)
}
