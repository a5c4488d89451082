package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/headshot-studio/backend/dto"
)

// ListPhotos godoc
// @Summary List a project's photos
// @Description Get the uploaded photos of a project in upload order
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.Photo
// @Router /projects/{id}/photos [get]
func ListPhotos(c *gin.Context) {
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

	photos, err := photoService.ListPhotos(projectID, userID.(string))
	if err != nil {
		respondError(c, "Failed to retrieve photos", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   photos,
	})
}

// UploadPhoto godoc
// @Summary Add a photo to a project
// @Description Pull the source image into storage, analyze it and record the photo
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param photo body dto.UploadPhotoRequest true "Photo Data"
// @Success 201 {object} models.Photo
// @Router /projects/{id}/photos [post]
func UploadPhoto(c *gin.Context) {
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

	var req dto.UploadPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	photo, err := photoService.UploadPhoto(c.Request.Context(), projectID, userID.(string), req)
	if err != nil {
		respondError(c, "Failed to upload photo", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   photo,
	})
}

// AnalyzePhotos godoc
// @Summary Analyze a project's photos
// @Description Re-analyze every photo in one batch and derive coaching suggestions
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.AnalyzeResponse
// @Router /projects/{id}/photos/analyze [post]
func AnalyzePhotos(c *gin.Context) {
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

	response, err := photoService.AnalyzeProjectPhotos(c.Request.Context(), projectID, userID.(string))
	if err != nil {
		respondError(c, "Failed to analyze photos", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}
