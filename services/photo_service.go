package services

import (
	"context"
	"fmt"

	"github.com/headshot-studio/backend/apperrors"
	"github.com/headshot-studio/backend/dto"
	"github.com/headshot-studio/backend/lib/llm"
	"github.com/headshot-studio/backend/lib/storage"
	"github.com/headshot-studio/backend/models"
	"github.com/headshot-studio/backend/repositories"
)

// Coaching rules: a dimension earns a suggestion when more than this share
// of photos grade "poor" on it
const poorShareThreshold = 0.3

// Projects with fewer photos than this get a "upload more" suggestion
const recommendedPhotoCount = 15

// PhotoService handles photo intake and batch analysis
type PhotoService struct {
	projectRepo  *repositories.ProjectRepository
	photoRepo    *repositories.PhotoRepository
	coachingRepo *repositories.CoachingFeedbackRepository
	analyzer     llm.Analyzer
	store        storage.Store
}

// NewPhotoService creates a new photo service instance
func NewPhotoService(analyzer llm.Analyzer, store storage.Store) *PhotoService {
	return &PhotoService{
		projectRepo:  repositories.NewProjectRepository(),
		photoRepo:    repositories.NewPhotoRepository(),
		coachingRepo: repositories.NewCoachingFeedbackRepository(),
		analyzer:     analyzer,
		store:        store,
	}
}

// UploadPhoto stores a source image, analyzes it and persists the photo row.
// The vision verdict comes through the fallback analyzer, so provider
// downtime degrades to a neutral score instead of failing the upload.
func (s *PhotoService) UploadPhoto(ctx context.Context, projectID, userID string, req dto.UploadPhotoRequest) (models.Photo, error) {
	project, err := getOwnedProject(s.projectRepo, projectID, userID, false)
	if err != nil {
		return models.Photo{}, err
	}

	folder := fmt.Sprintf("projects/%s/photos", project.ID)
	upload, err := s.store.UploadFromURL(ctx, req.ImageURL, folder)
	if err != nil {
		return models.Photo{}, apperrors.Provider("storage", err)
	}

	analysis, err := s.analyzer.AnalyzeOne(ctx, upload.URL)
	if err != nil {
		// Only reachable with a non-fallback analyzer wired in
		return models.Photo{}, apperrors.Provider("vision", err)
	}

	photo := models.Photo{
		ProjectID:    project.ID,
		URL:          upload.URL,
		ThumbnailURL: upload.ThumbnailURL,
		PublicID:     upload.PublicID,
		QualityScore: analysis.Score,
		Lighting:     analysis.Lighting,
		Background:   analysis.Background,
		Expression:   analysis.Expression,
		Angle:        analysis.Angle,
		Focus:        analysis.Focus,
		Approved:     analysis.Approved,
		Width:        upload.Width,
		Height:       upload.Height,
		Bytes:        upload.Bytes,
	}

	photo, err = s.photoRepo.Create(photo)
	if err != nil {
		return models.Photo{}, err
	}

	project.PhotoCount++
	if err := s.projectRepo.Update(project); err != nil {
		return models.Photo{}, err
	}

	return photo, nil
}

// ListPhotos retrieves a project's photos
func (s *PhotoService) ListPhotos(projectID, userID string) ([]models.Photo, error) {
	if _, err := getOwnedProject(s.projectRepo, projectID, userID, false); err != nil {
		return nil, err
	}
	return s.photoRepo.FindByProjectID(projectID)
}

// AnalyzeProjectPhotos re-analyzes every photo of the project in one batch,
// derives coaching suggestions from the per-dimension grades, stores the
// aggregate quality score and moves the project to ready.
func (s *PhotoService) AnalyzeProjectPhotos(ctx context.Context, projectID, userID string) (dto.AnalyzeResponse, error) {
	project, err := getOwnedProject(s.projectRepo, projectID, userID, false)
	if err != nil {
		return dto.AnalyzeResponse{}, err
	}

	photos, err := s.photoRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.AnalyzeResponse{}, err
	}

	if len(photos) == 0 {
		return dto.AnalyzeResponse{}, apperrors.InvalidState("No photos uploaded yet")
	}

	urls := make([]string, len(photos))
	for i, photo := range photos {
		urls[i] = photo.URL
	}

	batch, err := s.analyzer.AnalyzeBatch(ctx, urls)
	if err != nil {
		// Only reachable with a non-fallback analyzer wired in
		return dto.AnalyzeResponse{}, apperrors.Provider("vision", err)
	}

	// Copy the fresh verdicts onto the photo rows
	for i, photo := range photos {
		if i >= len(batch.PerImage) {
			break
		}
		verdict := batch.PerImage[i]
		if err := s.photoRepo.UpdateAnalysis(photo.ID, verdict.Score,
			verdict.Lighting, verdict.Background, verdict.Expression,
			verdict.Angle, verdict.Focus, verdict.Approved); err != nil {
			return dto.AnalyzeResponse{}, err
		}
	}

	coaching := deriveCoaching(project.ID, batch.PerImage)
	if _, err := s.coachingRepo.CreateBatch(coaching); err != nil {
		return dto.AnalyzeResponse{}, err
	}

	mean := batch.MeanScore
	project.QualityScore = &mean
	project.Status = models.ProjectStatusReady
	if err := s.projectRepo.Update(project); err != nil {
		return dto.AnalyzeResponse{}, err
	}

	return dto.AnalyzeResponse{
		QualityScore:    mean,
		OverallFeedback: scoreBand(mean),
		Summary:         batch.Summary,
		Coaching:        coaching,
	}, nil
}

// scoreBand maps the mean score to the user-facing quality band
func scoreBand(score float64) string {
	switch {
	case score >= 8.5:
		return "excellent"
	case score >= 7.0:
		return "good"
	case score >= 5.5:
		return "acceptable"
	default:
		return "needs improvement"
	}
}

type coachingRule struct {
	category    string
	priority    int
	title       string
	description string
	grade       func(llm.Analysis) string
}

var coachingRules = []coachingRule{
	{
		category:    models.CoachingCategoryLighting,
		priority:    1,
		title:       "Improve your lighting",
		description: "Many of your photos are poorly lit. Face a window or use soft, even lighting.",
		grade:       func(a llm.Analysis) string { return a.Lighting },
	},
	{
		category:    models.CoachingCategoryBackground,
		priority:    1,
		title:       "Use cleaner backgrounds",
		description: "Busy backgrounds distract the model. Prefer plain walls or tidy spaces.",
		grade:       func(a llm.Analysis) string { return a.Background },
	},
	{
		category:    models.CoachingCategoryExpression,
		priority:    2,
		title:       "Vary your expression",
		description: "Several photos score poorly on expression. Relax and try a natural smile.",
		grade:       func(a llm.Analysis) string { return a.Expression },
	},
	{
		category:    models.CoachingCategoryAngle,
		priority:    2,
		title:       "Adjust your camera angle",
		description: "Hold the camera at eye level and keep your face centered.",
		grade:       func(a llm.Analysis) string { return a.Angle },
	},
	{
		category:    models.CoachingCategoryFocus,
		priority:    2,
		title:       "Keep your photos sharp",
		description: "Blurry photos hurt training quality. Hold still and check focus before shooting.",
		grade:       func(a llm.Analysis) string { return a.Focus },
	},
}

// deriveCoaching applies the rule-based aggregation over the per-photo
// grades. No extra provider call is involved.
func deriveCoaching(projectID string, verdicts []llm.Analysis) []models.CoachingFeedback {
	var feedbacks []models.CoachingFeedback
	total := len(verdicts)

	for _, rule := range coachingRules {
		poorCount := 0
		for _, verdict := range verdicts {
			if rule.grade(verdict) == models.GradePoor {
				poorCount++
			}
		}
		if float64(poorCount) > float64(total)*poorShareThreshold {
			feedbacks = append(feedbacks, models.CoachingFeedback{
				ProjectID:   projectID,
				Category:    rule.category,
				Title:       rule.title,
				Description: rule.description,
				Priority:    rule.priority,
			})
		}
	}

	if total < recommendedPhotoCount {
		feedbacks = append(feedbacks, models.CoachingFeedback{
			ProjectID:   projectID,
			Category:    models.CoachingCategoryQuantity,
			Title:       "Upload more photos",
			Description: fmt.Sprintf("You have %d photos. Aim for at least %d varied shots for best training results.", total, recommendedPhotoCount),
			Priority:    1,
		})
	}

	return feedbacks
}
