package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/headshot-studio/backend/dto"
)

// StartTraining godoc
// @Summary Start model training
// @Description Submit a training job over the project's approved photos
// @Tags training
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param training body dto.StartTrainingRequest false "Training options"
// @Success 201 {object} models.TrainingModel
// @Router /projects/{id}/training [post]
func StartTraining(c *gin.Context) {
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

	// Options body is optional; an empty body means defaults
	var req dto.StartTrainingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data: " + err.Error(),
			})
			return
		}
	}

	trainingModel, err := trainingService.StartTraining(c.Request.Context(), projectID, userID.(string), req)
	if err != nil {
		respondError(c, "Failed to start training", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   trainingModel,
	})
}

// GetTrainingProgress godoc
// @Summary Get training progress
// @Description Poll the provider for the current training job state
// @Tags training
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.TrainingModel
// @Router /projects/{id}/training [get]
func GetTrainingProgress(c *gin.Context) {
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

	trainingModel, err := trainingService.CheckTrainingProgress(c.Request.Context(), projectID, userID.(string))
	if err != nil {
		respondError(c, "Failed to check training progress", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   trainingModel,
	})
}
