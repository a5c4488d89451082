package repositories

import (
	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/models"
)

// SocialAccountRepository handles database operations for social accounts
type SocialAccountRepository struct{}

// NewSocialAccountRepository creates a new social account repository instance
func NewSocialAccountRepository() *SocialAccountRepository {
	return &SocialAccountRepository{}
}

// Create inserts a new social account into the database
func (r *SocialAccountRepository) Create(account models.SocialAccount) (models.SocialAccount, error) {
	result := database.DB.Create(&account)
	return account, result.Error
}

// FindByID retrieves a social account by its ID
func (r *SocialAccountRepository) FindByID(id string) (models.SocialAccount, error) {
	var account models.SocialAccount
	result := database.DB.First(&account, "id = ?", id)
	return account, result.Error
}

// FindByUserID retrieves all social accounts of a user
func (r *SocialAccountRepository) FindByUserID(userID string) ([]models.SocialAccount, error) {
	var accounts []models.SocialAccount
	result := database.DB.Where("user_id = ?", userID).Find(&accounts)
	return accounts, result.Error
}

// SocialPostRepository handles database operations for social posts
type SocialPostRepository struct{}

// NewSocialPostRepository creates a new social post repository instance
func NewSocialPostRepository() *SocialPostRepository {
	return &SocialPostRepository{}
}

// Create inserts a new social post into the database
func (r *SocialPostRepository) Create(post models.SocialPost) (models.SocialPost, error) {
	result := database.DB.Create(&post)
	return post, result.Error
}

// FindByID retrieves a social post by its ID
func (r *SocialPostRepository) FindByID(id string) (models.SocialPost, error) {
	var post models.SocialPost
	result := database.DB.First(&post, "id = ?", id)
	return post, result.Error
}

// FindByAccountID retrieves all posts of an account, newest first
func (r *SocialPostRepository) FindByAccountID(accountID string) ([]models.SocialPost, error) {
	var posts []models.SocialPost
	result := database.DB.Where("account_id = ?", accountID).
		Order("created_at DESC").Find(&posts)
	return posts, result.Error
}

// Update modifies an existing social post
func (r *SocialPostRepository) Update(post models.SocialPost) error {
	result := database.DB.Save(&post)
	return result.Error
}
