package services

import (
	"errors"

	"github.com/headshot-studio/backend/dto"
	"github.com/headshot-studio/backend/models"
	"github.com/headshot-studio/backend/repositories"
	"gorm.io/gorm"
)

// PaymentService records payment-provider webhook events
type PaymentService struct {
	paymentRepo *repositories.PaymentRepository
}

// NewPaymentService creates a new payment service instance
func NewPaymentService() *PaymentService {
	return &PaymentService{
		paymentRepo: repositories.NewPaymentRepository(),
	}
}

// RecordWebhookEvent persists a payment event idempotently by external
// event id. Redelivered events return the stored row unchanged.
func (s *PaymentService) RecordWebhookEvent(event dto.PaymentWebhookEvent) (models.Payment, error) {
	existing, err := s.paymentRepo.FindByExternalID(event.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Payment{}, err
	}

	payment := models.Payment{
		UserID:     event.UserID,
		ExternalID: event.ID,
		Amount:     event.Amount,
		Plan:       event.Plan,
		Status:     models.PaymentStatus(event.Status),
	}
	if event.Currency != "" {
		payment.Currency = event.Currency
	}

	return s.paymentRepo.Create(payment)
}

// ListPayments retrieves the user's payment history
func (s *PaymentService) ListPayments(userID string) ([]models.Payment, error) {
	return s.paymentRepo.FindByUserID(userID)
}
