package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelforge/studio-console/internal/models"
)

func TestProjectRepository_ProgressClamp(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)

	over := &models.Project{Name: "Relaunch", Status: models.ProjectStatusActive, Progress: 140}
	require.NoError(t, repo.Create(over))
	under := &models.Project{Name: "Refresh", Status: models.ProjectStatusPlanning, Progress: -10}
	require.NoError(t, repo.Create(under))

	stored, err := repo.FindByID(over.ID)
	require.NoError(t, err)
	require.Equal(t, 100, stored.Progress)

	stored, err = repo.FindByID(under.ID)
	require.NoError(t, err)
	require.Zero(t, stored.Progress)

	// Updates are clamped the same way
	stored.Progress = 250
	require.NoError(t, repo.Update(stored))
	stored, err = repo.FindByID(under.ID)
	require.NoError(t, err)
	require.Equal(t, 100, stored.Progress)
}

func TestProjectRepository_StatusFilterAndOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)

	projects := []models.Project{
		{Name: "Relaunch", Client: "Brightline", Status: models.ProjectStatusActive, Progress: 60},
		{Name: "Catalog", Client: "Oak & Iron", Status: models.ProjectStatusCompleted, Progress: 100},
		{Name: "Portal", Client: "Harbor Labs", Status: models.ProjectStatusActive, Progress: 20},
	}
	for i := range projects {
		require.NoError(t, repo.Create(&projects[i]))
	}

	status := models.ProjectStatusActive
	active, err := repo.List(ProjectFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, "Relaunch", active[0].Name)
	require.Equal(t, "Portal", active[1].Name)

	found, err := repo.List(ProjectFilter{Query: "harbor"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Portal", found[0].Name)

	count, err := repo.CountActive()
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}
