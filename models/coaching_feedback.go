package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Coaching categories emitted by batch photo analysis
const (
	CoachingCategoryLighting   = "LIGHTING"
	CoachingCategoryBackground = "BACKGROUND"
	CoachingCategoryExpression = "EXPRESSION"
	CoachingCategoryAngle      = "ANGLE"
	CoachingCategoryFocus      = "FOCUS"
	CoachingCategoryQuantity   = "QUANTITY"
)

// CoachingFeedback is a rule-derived actionable suggestion surfaced after
// batch photo analysis. Priority is a display ordering hint only, lower
// means more urgent. Rows are never auto-deleted; users mark them resolved.
type CoachingFeedback struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID   string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Category    string         `json:"category" gorm:"type:varchar(20);not null"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"default:null"`
	Priority    int            `json:"priority" gorm:"default:1"`
	Resolved    bool           `json:"resolved" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key
func (c *CoachingFeedback) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// TableName sets the table name for CoachingFeedback model
func (CoachingFeedback) TableName() string {
	return "coaching_feedbacks"
}
