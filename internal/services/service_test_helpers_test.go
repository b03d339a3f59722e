package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pixelforge/studio-console/internal/database"
	"github.com/pixelforge/studio-console/internal/models"
)

type testEnv struct {
	db *gorm.DB
}

// openTestDB creates an isolated in-memory store with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Schema only, no seed: tests create their own rows.
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createTask(t *testing.T, db *gorm.DB, title string, status models.TaskStatus) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:    title,
		Client:   "Brightline",
		Status:   status,
		Priority: models.TaskPriorityMedium,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func createApproval(t *testing.T, db *gorm.DB, item string) *models.ApprovalRequest {
	t.Helper()

	request := &models.ApprovalRequest{
		Requester: "David Kim",
		Item:      item,
		Risk:      models.RiskMedium,
		Status:    models.ApprovalStatusPending,
	}
	require.NoError(t, db.Create(request).Error)
	return request
}
