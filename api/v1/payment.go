package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/headshot-studio/backend/dto"
)

// ListPayments godoc
// @Summary List the user's payments
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {array} models.Payment
// @Router /payments [get]
func ListPayments(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	payments, err := paymentService.ListPayments(userID.(string))
	if err != nil {
		respondError(c, "Failed to retrieve payments", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   payments,
	})
}

// PaymentWebhook godoc
// @Summary Payment provider webhook
// @Description Record a payment event. Deliveries are idempotent by event id.
// @Tags payments
// @Accept json
// @Produce json
// @Param event body dto.PaymentWebhookEvent true "Webhook event"
// @Success 200 {object} models.Payment
// @Router /webhooks/payment [post]
func PaymentWebhook(c *gin.Context) {
	var event dto.PaymentWebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid webhook payload: " + err.Error(),
		})
		return
	}

	payment, err := paymentService.RecordWebhookEvent(event)
	if err != nil {
		respondError(c, "Failed to record payment event", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   payment,
	})
}
