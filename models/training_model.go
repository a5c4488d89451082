package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainingStatus represents the lifecycle of an external training job
type TrainingStatus string

const (
	TrainingStatusPending   TrainingStatus = "pending"
	TrainingStatusTraining  TrainingStatus = "training"
	TrainingStatusCompleted TrainingStatus = "completed"
	TrainingStatusFailed    TrainingStatus = "failed"
)

// TrainingModel is one training job for a project's personalized
// generative model. A project has at most one active TrainingModel;
// re-training replaces the association. State is only ever mutated by
// polling the training provider and copying its reported state.
type TrainingModel struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID    string         `json:"projectId" gorm:"type:uuid;not null;index"`
	JobID        string         `json:"jobId" gorm:"not null"` // external training-job identifier
	Status       TrainingStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Progress     int            `json:"progress" gorm:"default:0"` // 0-100, monotonically non-decreasing
	ModelRef     string         `json:"modelRef" gorm:"default:null"`
	TriggerWord  string         `json:"triggerWord" gorm:"default:'TOK'"`
	ErrorMessage string         `json:"errorMessage" gorm:"default:null"`
	StartedAt    time.Time      `json:"startedAt"`
	CompletedAt  *time.Time     `json:"completedAt" gorm:"default:null"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key
func (t *TrainingModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// IsTerminal reports whether the job needs no further polling
func (t *TrainingModel) IsTerminal() bool {
	return t.Status == TrainingStatusCompleted || t.Status == TrainingStatusFailed
}

// TableName sets the table name for TrainingModel model
func (TrainingModel) TableName() string {
	return "training_models"
}
