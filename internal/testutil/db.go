// Package testutil provides isolated databases and fixtures for tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	config "taskboard.com/taskboard/internal/configs"
	"taskboard.com/taskboard/internal/constants"
	model "taskboard.com/taskboard/internal/models"
)

// NewDB opens a private in-memory sqlite database with the schema migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.OpenDatabase(config.DriverSQLite, dsn, gormlogger.Silent)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

// Fixtures inserts rows directly, bypassing service validation.
type Fixtures struct {
	t   *testing.T
	db  *gorm.DB
	seq int
}

func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db}
}

// next returns increasing timestamps so created_at ordering is deterministic.
func (f *Fixtures) next() time.Time {
	f.seq++
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Minute)
}

func (f *Fixtures) User(name string, level constants.UserLevel) *model.User {
	f.t.Helper()
	user := &model.User{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          fmt.Sprintf("%s@example.com", name),
		PasswordDigest: "x",
		Level:          level,
		CreatedAt:      f.next(),
	}
	require.NoError(f.t, f.db.Create(user).Error)
	return user
}

func (f *Fixtures) Project(owner *model.User, name string) *model.Project {
	f.t.Helper()
	project := &model.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: name + " description",
		UserID:      owner.ID,
		CreatedAt:   f.next(),
	}
	require.NoError(f.t, f.db.Create(project).Error)
	return project
}

func (f *Fixtures) Task(project *model.Project, title string, status constants.TaskStatus, assignee *model.User) *model.Task {
	f.t.Helper()
	task := &model.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    status,
		ProjectID: project.ID,
		CreatedAt: f.next(),
	}
	if assignee != nil {
		a := model.UserAssignee(assignee.ID)
		task.SetAssignee(&a)
	}
	require.NoError(f.t, f.db.Create(task).Error)
	return task
}
