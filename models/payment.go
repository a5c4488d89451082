package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentStatus mirrors the payment provider's event outcome
type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment records one payment-provider webhook event. Rows are written
// idempotently by external event id; the provider remains the source of
// truth for billing state.
type Payment struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID     string         `json:"userId" gorm:"type:uuid;not null;index"`
	ExternalID string         `json:"externalId" gorm:"uniqueIndex;not null"`
	Amount     int64          `json:"amount" gorm:"not null"` // cents
	Currency   string         `json:"currency" gorm:"type:varchar(3);default:'usd'"`
	Plan       string         `json:"plan" gorm:"default:null"`
	Status     PaymentStatus  `json:"status" gorm:"type:varchar(10);default:'pending'"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TableName sets the table name for Payment model
func (Payment) TableName() string {
	return "payments"
}
