package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback grade values returned by the vision analysis
const (
	GradeExcellent = "excellent"
	GradeGood      = "good"
	GradePoor      = "poor"
)

// Photo is one user-submitted source image together with its quality
// analysis. Rows are written once at upload time and only touched again
// by a re-analysis pass.
type Photo struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID    string         `json:"projectId" gorm:"type:uuid;not null;index"`
	URL          string         `json:"url" gorm:"not null"`
	ThumbnailURL string         `json:"thumbnailUrl" gorm:"default:null"`
	PublicID     string         `json:"publicId" gorm:"default:null"` // storage provider artifact id
	QualityScore float64        `json:"qualityScore" gorm:"default:0"`
	Lighting     string         `json:"lighting" gorm:"type:varchar(10);default:'good'"`
	Background   string         `json:"background" gorm:"type:varchar(10);default:'good'"`
	Expression   string         `json:"expression" gorm:"type:varchar(10);default:'good'"`
	Angle        string         `json:"angle" gorm:"type:varchar(10);default:'good'"`
	Focus        string         `json:"focus" gorm:"type:varchar(10);default:'good'"`
	Approved     bool           `json:"approved" gorm:"default:false"`
	Width        int            `json:"width" gorm:"default:0"`
	Height       int            `json:"height" gorm:"default:0"`
	Bytes        int64          `json:"bytes" gorm:"default:0"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key
func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TableName sets the table name for Photo model
func (Photo) TableName() string {
	return "photos"
}
