package services

import (
	"context"
	"errors"
	"time"

	"github.com/headshot-studio/backend/apperrors"
	"github.com/headshot-studio/backend/dto"
	"github.com/headshot-studio/backend/lib/modelgen"
	"github.com/headshot-studio/backend/models"
	"github.com/headshot-studio/backend/repositories"
	"gorm.io/gorm"
)

const (
	minTrainingPhotos    = 10
	defaultTriggerWord   = "TOK"
	defaultTrainingSteps = 1000
)

// TrainingService orchestrates the external model-training job
type TrainingService struct {
	projectRepo  *repositories.ProjectRepository
	photoRepo    *repositories.PhotoRepository
	trainingRepo *repositories.TrainingModelRepository
	trainer      modelgen.Trainer
}

// NewTrainingService creates a new training service instance
func NewTrainingService(trainer modelgen.Trainer) *TrainingService {
	return &TrainingService{
		projectRepo:  repositories.NewProjectRepository(),
		photoRepo:    repositories.NewPhotoRepository(),
		trainingRepo: repositories.NewTrainingModelRepository(),
		trainer:      trainer,
	}
}

// StartTraining submits a training job over the project's approved photos
// and records a new TrainingModel. The project status is advanced when the
// job is submitted, not when it completes: status reflects intent.
func (s *TrainingService) StartTraining(ctx context.Context, projectID, userID string, req dto.StartTrainingRequest) (models.TrainingModel, error) {
	project, err := getOwnedProject(s.projectRepo, projectID, userID, false)
	if err != nil {
		return models.TrainingModel{}, err
	}

	photoCount, err := s.photoRepo.CountByProjectID(projectID)
	if err != nil {
		return models.TrainingModel{}, err
	}
	if photoCount < minTrainingPhotos {
		return models.TrainingModel{}, apperrors.InvalidState("Need at least 10 photos to train model")
	}

	approved, err := s.photoRepo.FindApprovedByProjectID(projectID)
	if err != nil {
		return models.TrainingModel{}, err
	}
	// Rejected before the provider call: an empty training set would only
	// fail remotely with a vendor-specific error
	if len(approved) == 0 {
		return models.TrainingModel{}, apperrors.InvalidState("No approved photos to train on")
	}

	photoURLs := make([]string, len(approved))
	for i, photo := range approved {
		photoURLs[i] = photo.URL
	}

	triggerWord := req.TriggerWord
	if triggerWord == "" {
		triggerWord = defaultTriggerWord
	}
	steps := req.Steps
	if steps <= 0 {
		steps = defaultTrainingSteps
	}

	jobID, err := s.trainer.Train(ctx, photoURLs, triggerWord, steps)
	if err != nil {
		return models.TrainingModel{}, apperrors.Provider("training", err)
	}

	trainingModel := models.TrainingModel{
		ProjectID:   project.ID,
		JobID:       jobID,
		Status:      models.TrainingStatusTraining,
		TriggerWord: triggerWord,
		StartedAt:   time.Now(),
	}

	trainingModel, err = s.trainingRepo.Create(trainingModel)
	if err != nil {
		return models.TrainingModel{}, err
	}

	project.Status = models.ProjectStatusTraining
	if err := s.projectRepo.Update(project); err != nil {
		return models.TrainingModel{}, err
	}

	return trainingModel, nil
}

// CheckTrainingProgress polls the provider and copies its reported state
// onto the TrainingModel. Progress never moves backward, and terminal rows
// are returned without touching the provider again. This is a caller-driven
// poll; no background scheduler drives it.
func (s *TrainingService) CheckTrainingProgress(ctx context.Context, projectID, userID string) (models.TrainingModel, error) {
	project, err := getOwnedProject(s.projectRepo, projectID, userID, false)
	if err != nil {
		return models.TrainingModel{}, err
	}

	trainingModel, err := s.trainingRepo.FindLatestByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TrainingModel{}, apperrors.InvalidState("Training not started")
		}
		return models.TrainingModel{}, err
	}

	if trainingModel.IsTerminal() {
		return trainingModel, nil
	}

	jobStatus, err := s.trainer.PollStatus(ctx, trainingModel.JobID)
	if err != nil {
		// Poll errors leave the stored state untouched
		return models.TrainingModel{}, apperrors.Provider("training", err)
	}

	switch jobStatus.Status {
	case modelgen.JobStatusSucceeded:
		if err := s.trainingRepo.MarkCompleted(trainingModel.ID, jobStatus.ModelRef); err != nil {
			return models.TrainingModel{}, err
		}

	case modelgen.JobStatusFailed:
		// A reported terminal failure marks both the job and the project;
		// it is the provider's verdict, not a transient call error.
		if err := s.trainingRepo.MarkFailed(trainingModel.ID, jobStatus.Error); err != nil {
			return models.TrainingModel{}, err
		}
		project.Status = models.ProjectStatusFailed
		if err := s.projectRepo.Update(project); err != nil {
			return models.TrainingModel{}, err
		}

	default:
		progress := jobStatus.Progress
		if progress < trainingModel.Progress {
			progress = trainingModel.Progress
		}
		if err := s.trainingRepo.UpdateProgress(trainingModel.ID, models.TrainingStatusTraining, progress); err != nil {
			return models.TrainingModel{}, err
		}
	}

	return s.trainingRepo.FindLatestByProjectID(projectID)
}
