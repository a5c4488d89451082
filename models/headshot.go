package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Headshot is one generated output image. Preview headshots come from the
// cheap three-image batch; full-quality ones from the per-style batches.
// Preview headshots are excluded from top-pick selection.
type Headshot struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID    string         `json:"projectId" gorm:"type:uuid;not null;index"`
	URL          string         `json:"url" gorm:"not null"`
	ThumbnailURL string         `json:"thumbnailUrl" gorm:"default:null"`
	PublicID     string         `json:"publicId" gorm:"default:null"` // storage provider artifact id
	Style        string         `json:"style" gorm:"default:null"`
	Background   string         `json:"background" gorm:"default:null"`
	IsPreview    bool           `json:"isPreview" gorm:"default:false"`
	IsTopPick    bool           `json:"isTopPick" gorm:"default:false"`
	QualityScore *float64       `json:"qualityScore" gorm:"default:null"`
	Rating       *int           `json:"rating" gorm:"default:null"` // user-set, 1-5
	Favorite     bool           `json:"favorite" gorm:"default:false"`
	Downloaded   bool           `json:"downloaded" gorm:"default:false"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key
func (h *Headshot) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// TableName sets the table name for Headshot model
func (Headshot) TableName() string {
	return "headshots"
}
