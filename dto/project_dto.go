package dto

import (
	"github.com/headshot-studio/backend/models"
)

// ProjectFilter represents filter criteria for projects
type ProjectFilter struct {
	UserID    string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
	IsAdmin   bool
}

// ProjectListResponse represents paginated project list response
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name       string `json:"name" binding:"required"`
	Style      string `json:"style"`
	Background string `json:"background"`
}

// UpdateProjectRequest represents the request payload for updating an existing project
type UpdateProjectRequest struct {
	Name       string `json:"name"`
	Style      string `json:"style"`
	Background string `json:"background"`
}
