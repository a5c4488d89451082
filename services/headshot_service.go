package services

import (
	"errors"

	"github.com/headshot-studio/backend/apperrors"
	"github.com/headshot-studio/backend/dto"
	"github.com/headshot-studio/backend/models"
	"github.com/headshot-studio/backend/repositories"
	"gorm.io/gorm"
)

// HeadshotService handles user actions on generated headshots
type HeadshotService struct {
	projectRepo  *repositories.ProjectRepository
	headshotRepo *repositories.HeadshotRepository
}

// NewHeadshotService creates a new headshot service instance
func NewHeadshotService() *HeadshotService {
	return &HeadshotService{
		projectRepo:  repositories.NewProjectRepository(),
		headshotRepo: repositories.NewHeadshotRepository(),
	}
}

// getOwnedHeadshot loads a headshot and enforces ownership through its
// project. Mismatches report not-found, same as projects.
func (s *HeadshotService) getOwnedHeadshot(headshotID, userID string) (models.Headshot, error) {
	headshot, err := s.headshotRepo.FindByID(headshotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Headshot{}, apperrors.NotFound("headshot")
		}
		return models.Headshot{}, err
	}

	if _, err := getOwnedProject(s.projectRepo, headshot.ProjectID, userID, false); err != nil {
		return models.Headshot{}, apperrors.NotFound("headshot")
	}

	return headshot, nil
}

// ListHeadshots retrieves a project's headshots in generation order
func (s *HeadshotService) ListHeadshots(projectID, userID string) ([]models.Headshot, error) {
	if _, err := getOwnedProject(s.projectRepo, projectID, userID, false); err != nil {
		return nil, err
	}
	return s.headshotRepo.FindByProjectID(projectID)
}

// UpdateHeadshot applies the user's rating/favorite changes
func (s *HeadshotService) UpdateHeadshot(headshotID, userID string, req dto.UpdateHeadshotRequest) (models.Headshot, error) {
	headshot, err := s.getOwnedHeadshot(headshotID, userID)
	if err != nil {
		return models.Headshot{}, err
	}

	if req.Rating != nil {
		headshot.Rating = req.Rating
	}
	if req.Favorite != nil {
		headshot.Favorite = *req.Favorite
	}

	if err := s.headshotRepo.Update(headshot); err != nil {
		return models.Headshot{}, err
	}

	return headshot, nil
}

// DownloadHeadshot marks the headshot downloaded and returns its URL
func (s *HeadshotService) DownloadHeadshot(headshotID, userID string) (string, error) {
	headshot, err := s.getOwnedHeadshot(headshotID, userID)
	if err != nil {
		return "", err
	}

	headshot.Downloaded = true
	if err := s.headshotRepo.Update(headshot); err != nil {
		return "", err
	}

	return headshot.URL, nil
}
