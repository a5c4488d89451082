package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/headshot-studio/backend/dto"
)

// ListHeadshots godoc
// @Summary List a project's headshots
// @Description Get the generated headshots of a project in generation order
// @Tags headshots
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.Headshot
// @Router /projects/{id}/headshots [get]
func ListHeadshots(c *gin.Context) {
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

	headshots, err := headshotService.ListHeadshots(projectID, userID.(string))
	if err != nil {
		respondError(c, "Failed to retrieve headshots", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   headshots,
	})
}

// UpdateHeadshot godoc
// @Summary Update a headshot
// @Description Apply the user's rating or favorite changes to a headshot
// @Tags headshots
// @Accept json
// @Produce json
// @Param id path string true "Headshot ID"
// @Param headshot body dto.UpdateHeadshotRequest true "Headshot changes"
// @Success 200 {object} models.Headshot
// @Router /headshots/{id} [patch]
func UpdateHeadshot(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	headshotID := c.Param("id")
	if headshotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Headshot ID is required"})
		return
	}

	var req dto.UpdateHeadshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	headshot, err := headshotService.UpdateHeadshot(headshotID, userID.(string), req)
	if err != nil {
		respondError(c, "Failed to update headshot", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   headshot,
	})
}

// DownloadHeadshot godoc
// @Summary Download a headshot
// @Description Mark the headshot downloaded and return its URL
// @Tags headshots
// @Accept json
// @Produce json
// @Param id path string true "Headshot ID"
// @Success 200 {object} dto.DownloadResponse
// @Router /headshots/{id}/download [get]
func DownloadHeadshot(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	headshotID := c.Param("id")
	if headshotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Headshot ID is required"})
		return
	}

	url, err := headshotService.DownloadHeadshot(headshotID, userID.(string))
	if err != nil {
		respondError(c, "Failed to download headshot", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dto.DownloadResponse{URL: url},
	})
}
