package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/lib/llm"
	"github.com/headshot-studio/backend/lib/modelgen"
	"github.com/headshot-studio/backend/lib/storage"
	"github.com/headshot-studio/backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global connection at an in-memory SQLite database
// with the full schema migrated
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to create test database")

	// One shared connection: a pooled :memory: database is otherwise a
	// different empty database per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(database.AllModels()...)
	require.NoError(t, err, "Failed to migrate schema")

	database.DB = db
}

func createTestUser(t *testing.T, email string) models.User {
	t.Helper()

	user := models.User{
		Email:    email,
		Password: "hashed",
		Role:     models.RoleUser,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createTestProject(t *testing.T, userID string) models.Project {
	t.Helper()

	project := models.Project{
		UserID: userID,
		Name:   "Test Project",
		Status: models.ProjectStatusUploading,
	}
	require.NoError(t, database.DB.Create(&project).Error)
	return project
}

func createTestPhotos(t *testing.T, projectID string, count int, approved bool) []models.Photo {
	t.Helper()

	photos := make([]models.Photo, 0, count)
	for i := 0; i < count; i++ {
		photo := models.Photo{
			ProjectID:    projectID,
			URL:          fmt.Sprintf("https://cdn.example.com/photos/%d.jpg", i),
			QualityScore: 7.0,
			Approved:     approved,
		}
		require.NoError(t, database.DB.Create(&photo).Error)
		photos = append(photos, photo)
	}
	return photos
}

func createCompletedTrainingModel(t *testing.T, projectID string) models.TrainingModel {
	t.Helper()

	model := models.TrainingModel{
		ProjectID:   projectID,
		JobID:       "job-1",
		Status:      models.TrainingStatusCompleted,
		Progress:    100,
		ModelRef:    "model-ref-1",
		TriggerWord: "TOK",
	}
	require.NoError(t, database.DB.Create(&model).Error)
	return model
}

// fakeStore is an in-memory storage.Store double
type fakeStore struct {
	mu         sync.Mutex
	uploads    []string
	deleted    []string
	failUpload bool
	failDelete bool
}

func (f *fakeStore) UploadFromURL(ctx context.Context, sourceURL, folder string) (*storage.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failUpload {
		return nil, errors.New("upload failed")
	}

	key := fmt.Sprintf("%s/object-%d", folder, len(f.uploads))
	f.uploads = append(f.uploads, sourceURL)

	return &storage.UploadResult{
		URL:          "https://cdn.example.com/" + key,
		ThumbnailURL: "https://cdn.example.com/" + storage.ThumbKey(key),
		PublicID:     key,
		Width:        1024,
		Height:       1024,
		Bytes:        204800,
	}, nil
}

func (f *fakeStore) Delete(ctx context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failDelete {
		return errors.New("delete failed")
	}
	f.deleted = append(f.deleted, publicID)
	return nil
}

// fakeAnalyzer returns canned verdicts in order; when they run out it
// repeats the last one
type fakeAnalyzer struct {
	verdicts []llm.Analysis
	err      error
	calls    int
}

func (f *fakeAnalyzer) next() llm.Analysis {
	if len(f.verdicts) == 0 {
		return llm.DefaultAnalysis()
	}
	i := f.calls
	if i >= len(f.verdicts) {
		i = len(f.verdicts) - 1
	}
	return f.verdicts[i]
}

func (f *fakeAnalyzer) AnalyzeOne(ctx context.Context, imageURL string) (*llm.Analysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	verdict := f.next()
	f.calls++
	return &verdict, nil
}

func (f *fakeAnalyzer) AnalyzeBatch(ctx context.Context, imageURLs []string) (*llm.BatchAnalysis, error) {
	if f.err != nil {
		return nil, f.err
	}

	batch := &llm.BatchAnalysis{}
	var total float64
	for range imageURLs {
		verdict := f.next()
		f.calls++
		batch.PerImage = append(batch.PerImage, verdict)
		total += verdict.Score
	}
	batch.MeanScore = total / float64(len(imageURLs))
	batch.Summary = "test summary"
	return batch, nil
}

type fakeCaptioner struct {
	caption string
	err     error
}

func (f *fakeCaptioner) GenerateCaption(ctx context.Context, topic string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.caption, nil
}

// fakeTrainer records submissions and replays a scripted poll result
type fakeTrainer struct {
	jobID      string
	trainErr   error
	pollStatus *modelgen.JobStatus
	pollErr    error

	trainCalls int
	pollCalls  int
	gotPhotos  []string
	gotTrigger string
	gotSteps   int
}

func (f *fakeTrainer) Train(ctx context.Context, photoURLs []string, triggerWord string, steps int) (string, error) {
	f.trainCalls++
	f.gotPhotos = photoURLs
	f.gotTrigger = triggerWord
	f.gotSteps = steps
	if f.trainErr != nil {
		return "", f.trainErr
	}
	return f.jobID, nil
}

func (f *fakeTrainer) PollStatus(ctx context.Context, jobID string) (*modelgen.JobStatus, error) {
	f.pollCalls++
	if f.pollErr != nil {
		return nil, f.pollErr
	}
	return f.pollStatus, nil
}

// fakeGenerator returns req.Count distinct image URLs per call
type fakeGenerator struct {
	err      error
	requests []modelgen.GenerateRequest
	served   int
}

func (f *fakeGenerator) Generate(ctx context.Context, req modelgen.GenerateRequest) ([]string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}

	urls := make([]string, req.Count)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://provider.example.com/out/%d.png", f.served)
		f.served++
	}
	return urls, nil
}
