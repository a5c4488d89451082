package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/headshot-studio/backend/dto"
)

// ListProjects godoc
// @Summary List projects with pagination and filtering
// @Description Get all projects for admin, or only user's projects for regular users
// @Tags projects
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Search term for project name"
// @Param sortBy query string false "Field to sort by (created_at, updated_at, name, status)"
// @Param sortOrder query string false "Sort order (asc or desc)"
// @Success 200 {object} dto.ProjectListResponse
// @Router /projects [get]
func ListProjects(c *gin.Context) {
	// Get user info from context (set by AuthMiddleware)
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	// Check if user is admin
	role, _ := c.Get("role")
	isAdmin := role == "admin"

	// Parse query parameters
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	// Build filter
	filter := dto.ProjectFilter{
		UserID:    userID.(string),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      page,
		PageSize:  pageSize,
		IsAdmin:   isAdmin,
	}

	// Call service
	response, err := projectService.ListProjects(filter)
	if err != nil {
		respondError(c, "Failed to retrieve projects", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetProject godoc
// @Summary Get a project by ID
// @Description Get details of a project including photos, headshots, training state and coaching
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Router /projects/{id} [get]
func GetProject(c *gin.Context) {
	// Get user info from context
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	// Check if user is admin
	role, _ := c.Get("role")
	isAdmin := role == "admin"

	// Get project ID from URL
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	// Get project with services
	project, err := projectService.GetProjectDetail(projectID, userID.(string), isAdmin)
	if err != nil {
		respondError(c, "Failed to retrieve project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject godoc
// @Summary Create a new project
// @Description Create a new headshot project for the authenticated user
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project Data"
// @Success 201 {object} models.Project
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	// Get user info from context
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	// Parse request body to DTO first
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	// Create project
	project, err := projectService.CreateProject(userID.(string), req)
	if err != nil {
		respondError(c, "Failed to create project", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProject godoc
// @Summary Update an existing project
// @Description Update project name and generation defaults
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Project Data"
// @Success 200 {object} models.Project
// @Router /projects/{id} [put]
func UpdateProject(c *gin.Context) {
	// Get user info from context
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	// Get project ID from URL
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	// Parse request body to DTO
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	// Check if user is admin
	role, _ := c.Get("role")
	isAdmin := role == "admin"

	// Find and update project
	project, err := projectService.UpdateProject(projectID, userID.(string), isAdmin, req)
	if err != nil {
		respondError(c, "Failed to update project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Delete a project, its photos, headshots and stored images
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Router /projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	// Get user info from context
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	// Check if user is admin
	role, _ := c.Get("role")
	isAdmin := role == "admin"

	// Get project ID from URL
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	// Delete project and its storage artifacts
	if err := projectService.DeleteProject(c.Request.Context(), projectID, userID.(string), isAdmin); err != nil {
		respondError(c, "Failed to delete project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}
