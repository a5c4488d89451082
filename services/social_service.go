package services

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/headshot-studio/backend/apperrors"
	"github.com/headshot-studio/backend/dto"
	"github.com/headshot-studio/backend/lib/llm"
	"github.com/headshot-studio/backend/models"
	"github.com/headshot-studio/backend/repositories"
	"gorm.io/gorm"
)

const maxHashtagsPerPost = 15

// Curated content topics the generator rotates through when the caller
// doesn't supply one
var contentTopics = []string{
	"How a professional headshot changes first impressions on LinkedIn",
	"Behind the scenes: how AI turns selfies into studio portraits",
	"Five photo mistakes that hurt your personal brand",
	"Why consistent team headshots matter for company pages",
	"Choosing the right background for your industry",
	"From remote-team chaos to a unified company look",
	"What recruiters actually notice in a profile photo",
	"Refreshing your professional image after a career change",
}

// Hashtag sets keyed by content category
var hashtagSets = map[string][]string{
	"branding": {
		"#personalbranding", "#professionalheadshot", "#linkedinprofile",
		"#careeradvice", "#firstimpressions", "#profilephoto",
	},
	"ai": {
		"#aiphotography", "#aiheadshots", "#generativeai",
		"#futureofwork", "#aitools", "#techinnovation",
	},
	"business": {
		"#smallbusiness", "#entrepreneur", "#remotework",
		"#companyculture", "#teambuilding", "#startuplife",
	},
	"general": {
		"#headshots", "#portraitphotography", "#professional",
		"#careergrowth", "#jobsearch",
	},
}

// SocialService handles the content-automation suite: account records and
// LLM-generated posts. Actual publishing runs out of process; this service
// only prepares and tracks posts.
type SocialService struct {
	accountRepo *repositories.SocialAccountRepository
	postRepo    *repositories.SocialPostRepository
	captions    llm.CaptionGenerator
}

// NewSocialService creates a new social service instance
func NewSocialService(captions llm.CaptionGenerator) *SocialService {
	return &SocialService{
		accountRepo: repositories.NewSocialAccountRepository(),
		postRepo:    repositories.NewSocialPostRepository(),
		captions:    captions,
	}
}

// getOwnedAccount loads a social account and enforces ownership
func (s *SocialService) getOwnedAccount(accountID, userID string) (models.SocialAccount, error) {
	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SocialAccount{}, apperrors.NotFound("social account")
		}
		return models.SocialAccount{}, err
	}
	if account.UserID != userID {
		return models.SocialAccount{}, apperrors.NotFound("social account")
	}
	return account, nil
}

// CreateAccount connects a social account for the user
func (s *SocialService) CreateAccount(userID string, req dto.CreateSocialAccountRequest) (models.SocialAccount, error) {
	account := models.SocialAccount{
		UserID:      userID,
		Username:    req.Username,
		SessionData: req.SessionData,
	}
	if req.Platform != "" {
		account.Platform = req.Platform
	}
	return s.accountRepo.Create(account)
}

// ListAccounts retrieves the user's connected accounts
func (s *SocialService) ListAccounts(userID string) ([]models.SocialAccount, error) {
	return s.accountRepo.FindByUserID(userID)
}

// CreatePost generates a caption for the topic and persists a draft post.
// Unlike vision analysis there is no silent fallback here: a caption the
// user never reviewed must not be invented from a canned template.
func (s *SocialService) CreatePost(ctx context.Context, userID string, req dto.CreateSocialPostRequest) (models.SocialPost, error) {
	account, err := s.getOwnedAccount(req.AccountID, userID)
	if err != nil {
		return models.SocialPost{}, err
	}

	topic := req.Topic
	if topic == "" {
		topic = contentTopics[rand.Intn(len(contentTopics))]
	}

	caption, err := s.captions.GenerateCaption(ctx, topic)
	if err != nil {
		return models.SocialPost{}, apperrors.Provider("llm", err)
	}

	post := models.SocialPost{
		AccountID: account.ID,
		Topic:     topic,
		Caption:   caption,
		Hashtags:  pickHashtags(req.Category),
		Status:    models.SocialPostStatusDraft,
	}
	if req.ScheduledAt != nil {
		post.ScheduledAt = req.ScheduledAt
		post.Status = models.SocialPostStatusScheduled
	}

	return s.postRepo.Create(post)
}

// ListPosts retrieves the posts of one of the user's accounts
func (s *SocialService) ListPosts(accountID, userID string) ([]models.SocialPost, error) {
	if _, err := s.getOwnedAccount(accountID, userID); err != nil {
		return nil, err
	}
	return s.postRepo.FindByAccountID(accountID)
}

// MarkPosted records that the out-of-process driver published the post
func (s *SocialService) MarkPosted(postID, userID, externalPostID string) (models.SocialPost, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SocialPost{}, apperrors.NotFound("social post")
		}
		return models.SocialPost{}, err
	}

	if _, err := s.getOwnedAccount(post.AccountID, userID); err != nil {
		return models.SocialPost{}, apperrors.NotFound("social post")
	}

	now := time.Now()
	post.Status = models.SocialPostStatusPosted
	post.PostedAt = &now
	post.ExternalPostID = externalPostID

	if err := s.postRepo.Update(post); err != nil {
		return models.SocialPost{}, err
	}

	return post, nil
}

// pickHashtags samples tags from the requested category plus the general
// set, capped at maxHashtagsPerPost
func pickHashtags(category string) models.StringList {
	tags, ok := hashtagSets[category]
	if !ok {
		tags = hashtagSets["branding"]
	}

	combined := make([]string, 0, len(tags)+len(hashtagSets["general"]))
	combined = append(combined, tags...)
	combined = append(combined, hashtagSets["general"]...)

	if len(combined) > maxHashtagsPerPost {
		combined = combined[:maxHashtagsPerPost]
	}

	return combined
}
