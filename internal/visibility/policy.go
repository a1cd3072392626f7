// Package visibility decides which projects and tasks a user may read or
// act on. Every role-dependent rule lives here; repositories apply the
// returned scopes and never branch on role themselves.
//
//	admin: projects they own, and every task inside those projects
//	user:  tasks assigned to them, and the projects containing those tasks
//
// Both roles may only manage (update, delete, add tasks to) projects they own.
package visibility

import (
	"gorm.io/gorm"

	"taskboard.com/taskboard/internal/constants"
	model "taskboard.com/taskboard/internal/models"
)

type Policy struct {
	viewerID string
	admin    bool
}

func For(viewer *model.User) Policy {
	if viewer == nil {
		return Policy{}
	}
	return Policy{viewerID: viewer.ID, admin: viewer.IsAdmin()}
}

func (p Policy) Admin() bool {
	return p.admin
}

// Projects restricts a query over the projects table.
func (p Policy) Projects(db *gorm.DB) *gorm.DB {
	if p.viewerID == "" {
		return db.Where("1 = 0")
	}
	if p.admin {
		return db.Where("projects.user_id = ?", p.viewerID)
	}
	return db.Where(
		"EXISTS (SELECT 1 FROM tasks WHERE tasks.project_id = projects.id AND tasks.assignee_type = ? AND tasks.assignee_id = ?)",
		string(constants.AssigneeUser), p.viewerID,
	)
}

// Tasks restricts a query over the tasks table.
func (p Policy) Tasks(db *gorm.DB) *gorm.DB {
	if p.viewerID == "" {
		return db.Where("1 = 0")
	}
	if p.admin {
		return db.Where("tasks.project_id IN (SELECT projects.id FROM projects WHERE projects.user_id = ?)", p.viewerID)
	}
	return db.Where("tasks.assignee_type = ? AND tasks.assignee_id = ?", string(constants.AssigneeUser), p.viewerID)
}

// ManagedProjects restricts a query over the projects table to the projects
// the viewer may modify.
func (p Policy) ManagedProjects(db *gorm.DB) *gorm.DB {
	if p.viewerID == "" {
		return db.Where("1 = 0")
	}
	return db.Where("projects.user_id = ?", p.viewerID)
}
