package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/models"
)

func seedTasks(t *testing.T, db *gorm.DB) {
	t.Helper()

	tasks := []models.Task{
		{Title: "Homepage redesign", Client: "Brightline", Status: models.TaskStatusNew, Priority: models.TaskPriorityHigh, Description: "Hero section mockups"},
		{Title: "Brand review", Client: "Oak & Iron", Status: models.TaskStatusInProgress, Priority: models.TaskPriorityMedium, Description: "Check the typography"},
		{Title: "Campaign assets", Client: "Brightline", Status: models.TaskStatusNew, Priority: models.TaskPriorityHigh, Description: "Banner set for Q3"},
		{Title: "Newsletter", Client: "Harbor Labs", Status: models.TaskStatusReview, Priority: models.TaskPriorityLow, Description: "Responsive template"},
	}
	require.NoError(t, db.Create(&tasks).Error)
}

func TestTaskRepository_ListInsertionOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	seedTasks(t, db)

	tasks, err := repo.List(TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}
	require.Equal(t, []string{"Homepage redesign", "Brand review", "Campaign assets", "Newsletter"}, titles)
}

func TestTaskRepository_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	seedTasks(t, db)

	// Matches title regardless of case
	tasks, err := repo.List(TaskFilter{Query: "HOMEPAGE"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Homepage redesign", tasks[0].Title)

	// Matches any searchable field: description here
	tasks, err = repo.List(TaskFilter{Query: "typog"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Brand review", tasks[0].Title)

	// Matches client
	tasks, err = repo.List(TaskFilter{Query: "brightline"})
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Empty query matches everything
	tasks, err = repo.List(TaskFilter{Query: "   "})
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	// No match
	tasks, err = repo.List(TaskFilter{Query: "zeppelin"})
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskRepository_FiltersComposeWithAND(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	seedTasks(t, db)

	status := models.TaskStatusNew
	priority := models.TaskPriorityHigh

	tasks, err := repo.List(TaskFilter{Status: &status, Priority: &priority})
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Adding a search term narrows further
	tasks, err = repo.List(TaskFilter{Status: &status, Priority: &priority, Query: "campaign"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Campaign assets", tasks[0].Title)

	// Status alone
	tasks, err = repo.List(TaskFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
}

func TestTaskRepository_CountByStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	seedTasks(t, db)

	count, err := repo.CountByStatus(models.TaskStatusNew)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	count, err = repo.CountByStatus(models.TaskStatusCompleted)
	require.NoError(t, err)
	require.Zero(t, count)
}
