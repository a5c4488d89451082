package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/headshot-studio/backend/dto"
)

// GeneratePreview godoc
// @Summary Generate preview headshots
// @Description Generate a small fast-tier batch so the user can judge the trained model
// @Tags generation
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param options body dto.GeneratePreviewRequest false "Preview options"
// @Success 201 {array} models.Headshot
// @Router /projects/{id}/preview [post]
func GeneratePreview(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	// Options body is optional; an empty body means project defaults
	var req dto.GeneratePreviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data: " + err.Error(),
			})
			return
		}
	}

	headshots, err := generationService.GeneratePreview(c.Request.Context(), projectID, userID.(string), req)
	if err != nil {
		respondError(c, "Failed to generate preview", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   headshots,
	})
}

// GenerateFullSet godoc
// @Summary Generate the full headshot set
// @Description Generate quality-tier batches for each requested style and complete the project
// @Tags generation
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param options body dto.GenerateFullSetRequest true "Generation options"
// @Success 201 {array} models.Headshot
// @Router /projects/{id}/generate [post]
func GenerateFullSet(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	var req dto.GenerateFullSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	headshots, err := generationService.GenerateFullSet(c.Request.Context(), projectID, userID.(string), req)
	if err != nil {
		respondError(c, "Failed to generate full set", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   headshots,
	})
}
