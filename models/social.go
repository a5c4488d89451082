package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList custom type for JSON storage of string slices
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}

	return json.Unmarshal(bytes, l)
}

// SocialPostStatus represents the publishing lifecycle of a social post
type SocialPostStatus string

const (
	SocialPostStatusDraft     SocialPostStatus = "draft"
	SocialPostStatusScheduled SocialPostStatus = "scheduled"
	SocialPostStatusPosted    SocialPostStatus = "posted"
	SocialPostStatusFailed    SocialPostStatus = "failed"
)

// SocialAccount is a connected social-platform account. The session blob
// is stored opaque; the posting driver that consumes it runs out of process.
type SocialAccount struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string         `json:"userId" gorm:"type:uuid;not null;index"`
	Platform    string         `json:"platform" gorm:"type:varchar(20);default:'instagram'"`
	Username    string         `json:"username" gorm:"not null"`
	SessionData string         `json:"-" gorm:"default:null"` // encrypted, never exposed
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User  User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Posts []SocialPost `json:"posts,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key
func (a *SocialAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// TableName sets the table name for SocialAccount model
func (SocialAccount) TableName() string {
	return "social_accounts"
}

// SocialPost is one generated piece of content for a social account.
// Captions are produced by the LLM provider; hashtags are sampled from
// the curated category sets.
type SocialPost struct {
	ID             string           `json:"id" gorm:"primaryKey;type:uuid"`
	AccountID      string           `json:"accountId" gorm:"type:uuid;not null;index"`
	Topic          string           `json:"topic" gorm:"not null"`
	Caption        string           `json:"caption" gorm:"default:null"`
	Hashtags       StringList       `json:"hashtags" gorm:"type:text"`
	Status         SocialPostStatus `json:"status" gorm:"type:varchar(10);default:'draft'"`
	ScheduledAt    *time.Time       `json:"scheduledAt" gorm:"default:null"`
	PostedAt       *time.Time       `json:"postedAt" gorm:"default:null"`
	ExternalPostID string           `json:"externalPostId" gorm:"default:null"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt   `json:"-" gorm:"index"`

	// Relations
	Account SocialAccount `json:"account,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key
func (p *SocialPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TableName sets the table name for SocialPost model
func (SocialPost) TableName() string {
	return "social_posts"
}
