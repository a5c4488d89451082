package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/headshot-studio/backend/apperrors"
	"github.com/headshot-studio/backend/dto"
	"github.com/headshot-studio/backend/lib/modelgen"
	"github.com/headshot-studio/backend/lib/storage"
	"github.com/headshot-studio/backend/models"
	"github.com/headshot-studio/backend/repositories"
	"gorm.io/gorm"
)

const (
	previewBatchSize = 3
	topPickLimit     = 20

	// Placeholder until per-image scoring exists at generation time; the
	// top-pick rule is creation order, not measured quality.
	topPickPlaceholderScore = 8.5
)

// GenerationService runs the preview and full-set generation steps
type GenerationService struct {
	projectRepo  *repositories.ProjectRepository
	trainingRepo *repositories.TrainingModelRepository
	headshotRepo *repositories.HeadshotRepository
	generator    modelgen.Generator
	store        storage.Store
}

// NewGenerationService creates a new generation service instance
func NewGenerationService(generator modelgen.Generator, store storage.Store) *GenerationService {
	return &GenerationService{
		projectRepo:  repositories.NewProjectRepository(),
		trainingRepo: repositories.NewTrainingModelRepository(),
		headshotRepo: repositories.NewHeadshotRepository(),
		generator:    generator,
		store:        store,
	}
}

// completedModel fetches the project's training model and requires it to be
// completed. Generation never consults the project status field; the
// trained model is the only real precondition.
func (s *GenerationService) completedModel(projectID string) (models.TrainingModel, error) {
	trainingModel, err := s.trainingRepo.FindLatestByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TrainingModel{}, apperrors.InvalidState("Model training not completed")
		}
		return models.TrainingModel{}, err
	}
	if trainingModel.Status != models.TrainingStatusCompleted {
		return models.TrainingModel{}, apperrors.InvalidState("Model training not completed")
	}
	return trainingModel, nil
}

// GeneratePreview requests the small fast-tier batch and persists each image
// as a preview headshot. The per-image upload+persist sequences run
// concurrently: each image is an independent row insert, and a partial batch
// is kept rather than rolled back.
func (s *GenerationService) GeneratePreview(ctx context.Context, projectID, userID string, req dto.GeneratePreviewRequest) ([]models.Headshot, error) {
	project, err := getOwnedProject(s.projectRepo, projectID, userID, false)
	if err != nil {
		return nil, err
	}

	trainingModel, err := s.completedModel(projectID)
	if err != nil {
		return nil, err
	}

	style := req.Style
	if style == "" {
		style = project.Style
	}
	background := req.Background
	if background == "" {
		background = project.Background
	}

	project.Status = models.ProjectStatusGeneratingPreview
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	imageURLs, err := s.generator.Generate(ctx, modelgen.GenerateRequest{
		ModelRef:    trainingModel.ModelRef,
		TriggerWord: trainingModel.TriggerWord,
		Style:       style,
		Background:  background,
		Count:       previewBatchSize,
		Tier:        modelgen.TierFast,
	})
	if err != nil {
		return nil, apperrors.Provider("generation", err)
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		headshots []models.Headshot
	)

	for _, imageURL := range imageURLs {
		wg.Add(1)
		go func(imageURL string) {
			defer wg.Done()
			headshot, err := s.persistHeadshot(ctx, project.ID, imageURL, style, background, true)
			if err != nil {
				log.Printf("Warning: failed to persist preview image: %v", err)
				return
			}
			mu.Lock()
			headshots = append(headshots, headshot)
			mu.Unlock()
		}(imageURL)
	}
	wg.Wait()

	if len(headshots) == 0 {
		return nil, apperrors.Provider("storage", fmt.Errorf("no preview image could be stored"))
	}

	project.Status = models.ProjectStatusPreviewReady
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return headshots, nil
}

// GenerateFullSet generates the quality-tier batches style by style, then
// flags the top picks and completes the project. Styles run sequentially;
// each style's batch, including its uploads, finishes before the next one
// starts. Already-persisted headshots are kept if a later style fails.
func (s *GenerationService) GenerateFullSet(ctx context.Context, projectID, userID string, req dto.GenerateFullSetRequest) ([]models.Headshot, error) {
	project, err := getOwnedProject(s.projectRepo, projectID, userID, false)
	if err != nil {
		return nil, err
	}

	trainingModel, err := s.completedModel(projectID)
	if err != nil {
		return nil, err
	}

	numPerStyle := req.NumPerStyle
	if numPerStyle <= 0 {
		numPerStyle = 10
	}

	project.Status = models.ProjectStatusGeneratingFull
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	var headshots []models.Headshot
	for _, style := range req.Styles {
		imageURLs, err := s.generator.Generate(ctx, modelgen.GenerateRequest{
			ModelRef:    trainingModel.ModelRef,
			TriggerWord: trainingModel.TriggerWord,
			Style:       style,
			Background:  project.Background,
			Count:       numPerStyle,
			Tier:        modelgen.TierQuality,
		})
		if err != nil {
			return nil, apperrors.Provider("generation", err)
		}

		for _, imageURL := range imageURLs {
			headshot, err := s.persistHeadshot(ctx, project.ID, imageURL, style, project.Background, false)
			if err != nil {
				return nil, err
			}
			headshots = append(headshots, headshot)
		}
	}

	if err := s.assignTopPicks(project.ID); err != nil {
		return nil, err
	}

	generatedCount, err := s.headshotRepo.CountGeneratedByProjectID(project.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	project.Status = models.ProjectStatusCompleted
	project.CompletedAt = &now
	project.TotalGenerated = int(generatedCount)
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return headshots, nil
}

// assignTopPicks flags the first topPickLimit generated headshots by
// creation order
func (s *GenerationService) assignTopPicks(projectID string) error {
	generated, err := s.headshotRepo.FindGeneratedByProjectID(projectID)
	if err != nil {
		return err
	}

	for i, headshot := range generated {
		if i >= topPickLimit {
			break
		}
		if headshot.IsTopPick {
			continue
		}
		if err := s.headshotRepo.MarkTopPick(headshot.ID, topPickPlaceholderScore); err != nil {
			return err
		}
	}

	return nil
}

func (s *GenerationService) persistHeadshot(ctx context.Context, projectID, imageURL, style, background string, isPreview bool) (models.Headshot, error) {
	folder := fmt.Sprintf("projects/%s/headshots", projectID)
	upload, err := s.store.UploadFromURL(ctx, imageURL, folder)
	if err != nil {
		return models.Headshot{}, apperrors.Provider("storage", err)
	}

	return s.headshotRepo.Create(models.Headshot{
		ProjectID:    projectID,
		URL:          upload.URL,
		ThumbnailURL: upload.ThumbnailURL,
		PublicID:     upload.PublicID,
		Style:        style,
		Background:   background,
		IsPreview:    isPreview,
	})
}
