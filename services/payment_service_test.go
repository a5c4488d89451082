package services

import (
	"testing"

	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/dto"
	"github.com/headshot-studio/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWebhookEvent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "payer@example.com")
	svc := NewPaymentService()

	payment, err := svc.RecordWebhookEvent(dto.PaymentWebhookEvent{
		ID:     "evt_123",
		UserID: user.ID,
		Amount: 2900,
		Plan:   "professional",
		Status: "succeeded",
	})

	require.NoError(t, err)
	assert.Equal(t, "evt_123", payment.ExternalID)
	assert.Equal(t, int64(2900), payment.Amount)
	assert.Equal(t, models.PaymentStatusSucceeded, payment.Status)
}

func TestRecordWebhookEvent_Idempotent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "payer@example.com")
	svc := NewPaymentService()

	first, err := svc.RecordWebhookEvent(dto.PaymentWebhookEvent{
		ID:     "evt_123",
		UserID: user.ID,
		Amount: 2900,
		Status: "succeeded",
	})
	require.NoError(t, err)

	// Redelivery with different fields returns the stored row unchanged
	second, err := svc.RecordWebhookEvent(dto.PaymentWebhookEvent{
		ID:     "evt_123",
		UserID: user.ID,
		Amount: 9999,
		Status: "failed",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(2900), second.Amount)
	assert.Equal(t, models.PaymentStatusSucceeded, second.Status)

	var count int64
	require.NoError(t, database.DB.Model(&models.Payment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListPayments(t *testing.T) {
	setupTestDB(t)
	payer := createTestUser(t, "payer@example.com")
	other := createTestUser(t, "other@example.com")
	svc := NewPaymentService()

	_, err := svc.RecordWebhookEvent(dto.PaymentWebhookEvent{ID: "evt_1", UserID: payer.ID, Amount: 2900, Status: "succeeded"})
	require.NoError(t, err)
	_, err = svc.RecordWebhookEvent(dto.PaymentWebhookEvent{ID: "evt_2", UserID: other.ID, Amount: 1900, Status: "succeeded"})
	require.NoError(t, err)

	payments, err := svc.ListPayments(payer.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "evt_1", payments[0].ExternalID)
}
