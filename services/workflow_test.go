package services

import (
	"context"
	"testing"

	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/dto"
	"github.com/headshot-studio/backend/lib/modelgen"
	"github.com/headshot-studio/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drives a project through the whole lifecycle: create, upload, analyze,
// train, poll, preview, full set, delete.
func TestFullWorkflow(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, "owner@example.com")

	store := &fakeStore{}
	analyzer := &fakeAnalyzer{}
	trainer := &fakeTrainer{jobID: "job-42"}
	generator := &fakeGenerator{}

	projectSvc := NewProjectService(store)
	photoSvc := NewPhotoService(analyzer, store)
	trainingSvc := NewTrainingService(trainer)
	generationSvc := NewGenerationService(generator, store)

	// Create
	project, err := projectSvc.CreateProject(user.ID, dto.CreateProjectRequest{Name: "Full Run"})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusUploading, project.Status)

	// Upload 12 photos
	for i := 0; i < 12; i++ {
		_, err := photoSvc.UploadPhoto(ctx, project.ID, user.ID, dto.UploadPhotoRequest{
			ImageURL: "https://phone.example.com/selfie.jpg",
		})
		require.NoError(t, err)
	}

	// Analyze
	analysis, err := photoSvc.AnalyzeProjectPhotos(ctx, project.ID, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, analysis.QualityScore, 0.001)
	assert.Equal(t, "good", analysis.OverallFeedback)

	// Train
	trainingModel, err := trainingSvc.StartTraining(ctx, project.ID, user.ID, dto.StartTrainingRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.TrainingStatusTraining, trainingModel.Status)

	// Poll: in progress, then succeeded
	trainer.pollStatus = &modelgen.JobStatus{Status: modelgen.JobStatusTraining, Progress: 50}
	trainingModel, err = trainingSvc.CheckTrainingProgress(ctx, project.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, trainingModel.Progress)

	trainer.pollStatus = &modelgen.JobStatus{Status: modelgen.JobStatusSucceeded, Progress: 100, ModelRef: "model-ref-1"}
	trainingModel, err = trainingSvc.CheckTrainingProgress(ctx, project.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TrainingStatusCompleted, trainingModel.Status)

	// Preview
	previews, err := generationSvc.GeneratePreview(ctx, project.ID, user.ID, dto.GeneratePreviewRequest{})
	require.NoError(t, err)
	assert.Len(t, previews, 3)

	// Full set
	headshots, err := generationSvc.GenerateFullSet(ctx, project.ID, user.ID, dto.GenerateFullSetRequest{
		Styles: []string{"CORPORATE", "CREATIVE"},
	})
	require.NoError(t, err)
	assert.Len(t, headshots, 20)

	detail, err := projectSvc.GetProjectDetail(project.ID, user.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, detail.Status)
	assert.Equal(t, 20, detail.TotalGenerated)
	assert.Equal(t, 12, detail.PhotoCount)
	assert.Len(t, detail.Headshots, 23, "previews plus full set")

	// Delete releases everything
	require.NoError(t, projectSvc.DeleteProject(ctx, project.ID, user.ID, false))
	assert.Len(t, store.deleted, 12+23, "every stored photo and headshot artifact is released")

	var remaining int64
	require.NoError(t, database.DB.Model(&models.Headshot{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}
