package repositories

import (
	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/models"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct{}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

// Create inserts a new payment into the database
func (r *PaymentRepository) Create(payment models.Payment) (models.Payment, error) {
	result := database.DB.Create(&payment)
	return payment, result.Error
}

// FindByExternalID retrieves a payment by its provider event id
func (r *PaymentRepository) FindByExternalID(externalID string) (models.Payment, error) {
	var payment models.Payment
	result := database.DB.First(&payment, "external_id = ?", externalID)
	return payment, result.Error
}

// FindByUserID retrieves all payments of a user, newest first
func (r *PaymentRepository) FindByUserID(userID string) ([]models.Payment, error) {
	var payments []models.Payment
	result := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&payments)
	return payments, result.Error
}
