package dto

import "time"

// CreateSocialAccountRequest represents the payload for connecting a
// social account
type CreateSocialAccountRequest struct {
	Platform    string `json:"platform"`
	Username    string `json:"username" binding:"required"`
	SessionData string `json:"sessionData"`
}

// CreateSocialPostRequest represents the payload for generating a post.
// Topic and category are optional; the service picks from its curated
// sets when they are empty.
type CreateSocialPostRequest struct {
	AccountID   string     `json:"accountId" binding:"required"`
	Topic       string     `json:"topic"`
	Category    string     `json:"category"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

// MarkPostedRequest represents the confirmation from the posting driver
type MarkPostedRequest struct {
	ExternalPostID string `json:"externalPostId"`
}
