package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard.com/taskboard/internal/constants"
	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/testutil"
	"taskboard.com/taskboard/internal/visibility"
)

type world struct {
	admin, otherAdmin, alice, bob *model.User
	p1, p2, p3                    *model.Project
	t1, t2, t3, t4                *model.Task
}

// seed builds:
//
//	admin owns p1{t1 DONE->alice, t2 TODO} and p3{}
//	otherAdmin owns p2{t3 IN_PROGRESS->alice, t4 TODO->bob}
func seed(t *testing.T, f *testutil.Fixtures) world {
	var w world
	w.admin = f.User("admin", constants.LevelAdmin)
	w.otherAdmin = f.User("other", constants.LevelAdmin)
	w.alice = f.User("alice", constants.LevelUser)
	w.bob = f.User("bob", constants.LevelUser)

	w.p1 = f.Project(w.admin, "P1")
	w.p2 = f.Project(w.otherAdmin, "P2")
	w.p3 = f.Project(w.admin, "P3")

	w.t1 = f.Task(w.p1, "t1", constants.StatusDone, w.alice)
	w.t2 = f.Task(w.p1, "t2", constants.StatusTodo, nil)
	w.t3 = f.Task(w.p2, "t3", constants.StatusInProgress, w.alice)
	w.t4 = f.Task(w.p2, "t4", constants.StatusTodo, w.bob)
	return w
}

func projectIDs(projects []model.Project) []string {
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func taskIDs(tasks []model.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestProjectRepository_ListVisible(t *testing.T) {
	db := testutil.NewDB(t)
	w := seed(t, testutil.NewFixtures(t, db))
	repo := NewProjectRepository(db)
	ctx := context.Background()

	adminProjects, err := repo.ListVisible(ctx, visibility.For(w.admin))
	require.NoError(t, err)
	assert.Equal(t, []string{w.p3.ID, w.p1.ID}, projectIDs(adminProjects), "own projects only, newest first")

	aliceProjects, err := repo.ListVisible(ctx, visibility.For(w.alice))
	require.NoError(t, err)
	assert.Equal(t, []string{w.p2.ID, w.p1.ID}, projectIDs(aliceProjects))

	bobProjects, err := repo.ListVisible(ctx, visibility.For(w.bob))
	require.NoError(t, err)
	assert.Equal(t, []string{w.p2.ID}, projectIDs(bobProjects))

	none, err := repo.ListVisible(ctx, visibility.For(nil))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProjectRepository_DistinctForManyAssignedTasks(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	admin := f.User("admin", constants.LevelAdmin)
	user := f.User("user", constants.LevelUser)
	p := f.Project(admin, "P")
	f.Task(p, "a", constants.StatusTodo, user)
	f.Task(p, "b", constants.StatusDone, user)
	f.Task(p, "c", constants.StatusInProgress, user)

	repo := NewProjectRepository(db)
	projects, err := repo.ListVisible(context.Background(), visibility.For(user))
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	count, err := repo.CountVisible(context.Background(), visibility.For(user))
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestProjectRepository_FindVisibleAndManaged(t *testing.T) {
	db := testutil.NewDB(t)
	w := seed(t, testutil.NewFixtures(t, db))
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p, err := repo.FindVisible(ctx, visibility.For(w.admin), w.p1.ID)
	require.NoError(t, err)
	assert.Equal(t, "P1", p.Name)

	_, err = repo.FindVisible(ctx, visibility.For(w.admin), w.p2.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindVisible(ctx, visibility.For(w.bob), w.p1.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindVisible(ctx, visibility.For(w.bob), w.p2.ID)
	assert.NoError(t, err)

	_, err = repo.FindManaged(ctx, visibility.For(w.bob), w.p2.ID)
	assert.ErrorIs(t, err, ErrNotFound, "visible is not managed")

	_, err = repo.FindManaged(ctx, visibility.For(w.otherAdmin), w.p2.ID)
	assert.NoError(t, err)
}

func TestTaskRepository_VisibilityByRole(t *testing.T) {
	db := testutil.NewDB(t)
	w := seed(t, testutil.NewFixtures(t, db))
	repo := NewTaskRepository(db)
	ctx := context.Background()

	tests := []struct {
		name   string
		viewer *model.User
		filter TaskFilter
		want   []string
	}{
		{"admin sees tasks of own projects", w.admin, TaskFilter{}, []string{w.t2.ID, w.t1.ID}},
		{"other admin", w.otherAdmin, TaskFilter{}, []string{w.t4.ID, w.t3.ID}},
		{"user sees assigned tasks", w.alice, TaskFilter{}, []string{w.t3.ID, w.t1.ID}},
		{"user narrowed by project", w.alice, TaskFilter{ProjectID: w.p1.ID}, []string{w.t1.ID}},
		{"admin narrowed to foreign project", w.admin, TaskFilter{ProjectID: w.p2.ID}, []string{}},
		{"status filter", w.admin, TaskFilter{Status: constants.StatusTodo}, []string{w.t2.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := repo.ListVisible(ctx, visibility.For(tt.viewer), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, taskIDs(tasks))

			count, err := repo.CountVisible(ctx, visibility.For(tt.viewer), tt.filter)
			require.NoError(t, err)
			assert.EqualValues(t, len(tt.want), count)
		})
	}
}

func TestTaskRepository_NonAdminSeesOnlyAssigned(t *testing.T) {
	db := testutil.NewDB(t)
	w := seed(t, testutil.NewFixtures(t, db))
	repo := NewTaskRepository(db)
	ctx := context.Background()

	var all []model.Task
	require.NoError(t, db.Find(&all).Error)

	for _, user := range []*model.User{w.alice, w.bob} {
		visible, err := repo.ListVisible(ctx, visibility.For(user), TaskFilter{})
		require.NoError(t, err)
		seen := map[string]bool{}
		for _, task := range visible {
			seen[task.ID] = true
		}
		for i := range all {
			assert.Equal(t, all[i].AssignedTo(user.ID), seen[all[i].ID], "task %s for %s", all[i].Title, user.Name)
		}
	}
}

func TestTaskRepository_FindVisible(t *testing.T) {
	db := testutil.NewDB(t)
	w := seed(t, testutil.NewFixtures(t, db))
	repo := NewTaskRepository(db)
	ctx := context.Background()

	_, err := repo.FindVisible(ctx, visibility.For(w.admin), w.t2.ID)
	assert.NoError(t, err)

	_, err = repo.FindVisible(ctx, visibility.For(w.admin), w.t3.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindVisible(ctx, visibility.For(w.bob), w.t1.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	task, err := repo.FindVisible(ctx, visibility.For(w.bob), w.t4.ID)
	require.NoError(t, err)
	assert.True(t, task.AssignedTo(w.bob.ID))
}

func TestProjectRepository_DeleteCascadesTasks(t *testing.T) {
	db := testutil.NewDB(t)
	w := seed(t, testutil.NewFixtures(t, db))
	projects := NewProjectRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	require.NoError(t, projects.Delete(ctx, w.p2.ID))

	for _, user := range []*model.User{w.admin, w.otherAdmin, w.alice, w.bob} {
		visible, err := tasks.ListVisible(ctx, visibility.For(user), TaskFilter{})
		require.NoError(t, err)
		for _, task := range visible {
			assert.NotEqual(t, w.p2.ID, task.ProjectID)
		}
	}

	var remaining int64
	require.NoError(t, db.Model(&model.Task{}).Where("project_id = ?", w.p2.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestUserRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	ann := &model.User{Name: "Ann Lee", Email: " Ann@Example.com ", PasswordDigest: "x", Level: constants.LevelUser}
	require.NoError(t, repo.Create(ctx, ann))
	assert.NotEmpty(t, ann.ID)
	assert.Equal(t, "ann@example.com", ann.Email)

	bo := &model.User{Name: "Bo_Ross", Email: "bo@example.com", PasswordDigest: "x", Level: constants.LevelAdmin}
	require.NoError(t, repo.Create(ctx, bo))

	found, err := repo.FindByEmail(ctx, "ANN@example.com")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, found.ID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	taken, err := repo.EmailTaken(ctx, "ann@example.com", "")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = repo.EmailTaken(ctx, "ann@example.com", ann.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	users, err := repo.List(ctx, UserFilter{Name: "ANN"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, ann.ID, users[0].ID)

	users, err = repo.List(ctx, UserFilter{Name: "_"})
	require.NoError(t, err)
	require.Len(t, users, 1, "underscore is matched literally")
	assert.Equal(t, bo.ID, users[0].ID)

	users, err = repo.List(ctx, UserFilter{Email: "EXAMPLE"})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	ann := &model.User{Name: "Ann", Email: "ann@example.com", PasswordDigest: "x", Level: constants.LevelUser}
	require.NoError(t, repo.Create(ctx, ann))
	bo := &model.User{Name: "Bo", Email: "bo@example.com", PasswordDigest: "x", Level: constants.LevelUser}
	require.NoError(t, repo.Create(ctx, bo))

	twin := &model.User{Name: "Twin", Email: "ANN@example.com", PasswordDigest: "x", Level: constants.LevelUser}
	assert.ErrorIs(t, repo.Create(ctx, twin), ErrDuplicate)

	bo.Email = "ann@example.com"
	assert.ErrorIs(t, repo.Update(ctx, bo), ErrDuplicate)
}

func TestUserRepository_DeleteCascadesProjects(t *testing.T) {
	db := testutil.NewDB(t)
	w := seed(t, testutil.NewFixtures(t, db))
	repo := NewUserRepository(db)

	deleted, err := repo.Delete(context.Background(), w.admin.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var projects int64
	require.NoError(t, db.Model(&model.Project{}).Where("user_id = ?", w.admin.ID).Count(&projects).Error)
	assert.Zero(t, projects)

	var tasks int64
	require.NoError(t, db.Model(&model.Task{}).Where("project_id = ?", w.p1.ID).Count(&tasks).Error)
	assert.Zero(t, tasks)

	deleted, err = repo.Delete(context.Background(), w.admin.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
