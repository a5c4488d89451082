package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle stage of a headshot project.
// Status is an advisory progress marker for the UI and guard conditions,
// not a strictly enforced transition table: each operation validates its
// own preconditions (photo counts, training state) independently.
type ProjectStatus string

const (
	ProjectStatusUploading         ProjectStatus = "uploading"
	ProjectStatusAnalyzing         ProjectStatus = "analyzing"
	ProjectStatusReady             ProjectStatus = "ready"
	ProjectStatusTraining          ProjectStatus = "training"
	ProjectStatusGeneratingPreview ProjectStatus = "generating_preview"
	ProjectStatusPreviewReady      ProjectStatus = "preview_ready"
	ProjectStatusGeneratingFull    ProjectStatus = "generating_full"
	ProjectStatusCompleted         ProjectStatus = "completed"
	ProjectStatusFailed            ProjectStatus = "failed"
)

// Project is a single user's headshot-generation effort and the aggregate
// root for Photo, TrainingModel, Headshot and CoachingFeedback rows.
type Project struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID         string         `json:"userId" gorm:"type:uuid;not null;index"`
	Name           string         `json:"name" gorm:"not null"`
	Style          string         `json:"style" gorm:"default:'CORPORATE'"`
	Background     string         `json:"background" gorm:"default:'OFFICE'"`
	Status         ProjectStatus  `json:"status" gorm:"type:varchar(20);default:'uploading'"`
	QualityScore   *float64       `json:"qualityScore" gorm:"default:null"`
	PhotoCount     int            `json:"photoCount" gorm:"default:0"`
	TotalGenerated int            `json:"totalGenerated" gorm:"default:0"`
	CompletedAt    *time.Time     `json:"completedAt" gorm:"default:null"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User              User               `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Photos            []Photo            `json:"photos,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Headshots         []Headshot         `json:"headshots,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	TrainingModel     *TrainingModel     `json:"trainingModel,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CoachingFeedbacks []CoachingFeedback `json:"coachingFeedbacks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TableName sets the table name for Project model
func (Project) TableName() string {
	return "projects"
}
