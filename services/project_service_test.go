package services

import (
	"context"
	"testing"

	"github.com/headshot-studio/backend/apperrors"
	"github.com/headshot-studio/backend/database"
	"github.com/headshot-studio/backend/dto"
	"github.com/headshot-studio/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "owner@example.com")
	svc := NewProjectService(&fakeStore{})

	project, err := svc.CreateProject(user.ID, dto.CreateProjectRequest{
		Name:  "LinkedIn Refresh",
		Style: "CREATIVE",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, models.ProjectStatusUploading, project.Status)
	assert.Equal(t, "CREATIVE", project.Style)
	assert.Equal(t, user.ID, project.UserID)
}

func TestGetProjectDetail_OwnershipEnforced(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "owner@example.com")
	other := createTestUser(t, "other@example.com")
	project := createTestProject(t, owner.ID)
	svc := NewProjectService(&fakeStore{})

	_, err := svc.GetProjectDetail(project.ID, other.ID, false)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err), "ownership mismatch should look like not-found")

	// Admin bypasses ownership
	_, err = svc.GetProjectDetail(project.ID, other.ID, true)
	require.NoError(t, err)
}

func TestListProjects_PaginationAndSearch(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "owner@example.com")
	other := createTestUser(t, "other@example.com")
	svc := NewProjectService(&fakeStore{})

	for _, name := range []string{"Corporate Set", "Creative Set", "Old Draft"} {
		_, err := svc.CreateProject(user.ID, dto.CreateProjectRequest{Name: name})
		require.NoError(t, err)
	}
	_, err := svc.CreateProject(other.ID, dto.CreateProjectRequest{Name: "Corporate Set"})
	require.NoError(t, err)

	response, err := svc.ListProjects(dto.ProjectFilter{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), response.TotalCount, "non-admin should only see own projects")

	response, err = svc.ListProjects(dto.ProjectFilter{UserID: user.ID, Search: "corporate"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), response.TotalCount, "search should be case-insensitive")

	response, err = svc.ListProjects(dto.ProjectFilter{UserID: user.ID, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, response.Projects, 2)
	assert.Equal(t, 2, response.TotalPages)
}

func TestUpdateProject(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "owner@example.com")
	project := createTestProject(t, user.ID)
	svc := NewProjectService(&fakeStore{})

	updated, err := svc.UpdateProject(project.ID, user.ID, false, dto.UpdateProjectRequest{
		Name:       "Renamed",
		Background: "STUDIO",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "STUDIO", updated.Background)
}

func TestDeleteProject_CascadesAndReleasesStorage(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "owner@example.com")
	project := createTestProject(t, user.ID)

	photo := models.Photo{ProjectID: project.ID, URL: "u", PublicID: "photos/a"}
	require.NoError(t, database.DB.Create(&photo).Error)
	headshot := models.Headshot{ProjectID: project.ID, URL: "u", PublicID: "headshots/b"}
	require.NoError(t, database.DB.Create(&headshot).Error)
	training := models.TrainingModel{ProjectID: project.ID, JobID: "job"}
	require.NoError(t, database.DB.Create(&training).Error)
	feedback := models.CoachingFeedback{ProjectID: project.ID, Category: models.CoachingCategoryLighting, Title: "t"}
	require.NoError(t, database.DB.Create(&feedback).Error)

	store := &fakeStore{}
	svc := NewProjectService(store)

	require.NoError(t, svc.DeleteProject(context.Background(), project.ID, user.ID, false))

	assert.ElementsMatch(t, []string{"photos/a", "headshots/b"}, store.deleted)

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"project", &models.Project{}},
		{"photo", &models.Photo{}},
		{"headshot", &models.Headshot{}},
		{"training model", &models.TrainingModel{}},
		{"coaching feedback", &models.CoachingFeedback{}},
	} {
		var count int64
		require.NoError(t, database.DB.Model(probe.model).Count(&count).Error)
		assert.Zero(t, count, "%s rows should be gone", probe.name)
	}
}

func TestDeleteProject_SucceedsWhenStorageDeleteFails(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "owner@example.com")
	project := createTestProject(t, user.ID)

	photo := models.Photo{ProjectID: project.ID, URL: "u", PublicID: "photos/a"}
	require.NoError(t, database.DB.Create(&photo).Error)

	svc := NewProjectService(&fakeStore{failDelete: true})

	require.NoError(t, svc.DeleteProject(context.Background(), project.ID, user.ID, false),
		"storage failures must not block deletion")

	var count int64
	require.NoError(t, database.DB.Model(&models.Project{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteProject_OtherUserRejected(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "owner@example.com")
	other := createTestUser(t, "other@example.com")
	project := createTestProject(t, owner.ID)
	svc := NewProjectService(&fakeStore{})

	err := svc.DeleteProject(context.Background(), project.ID, other.ID, false)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
