package model

import (
	"time"

	"taskboard.com/taskboard/internal/constants"
)

type Task struct {
	ID           string                  `gorm:"primaryKey;size:36" json:"id"`
	Title        string                  `gorm:"size:100;not null" json:"title"`
	Description  string                  `gorm:"type:text" json:"description"`
	Status       constants.TaskStatus    `gorm:"type:varchar(20);not null;default:TODO;index" json:"status"`
	ProjectID    string                  `gorm:"size:36;not null;index" json:"projectId"`
	Project      *Project                `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	AssigneeType *constants.AssigneeKind `gorm:"size:50;index:idx_tasks_assignee" json:"assigneeType"`
	AssigneeID   *string                 `gorm:"size:36;index:idx_tasks_assignee" json:"assigneeId"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

// Assignee returns the task's assignee, if any.
func (t *Task) Assignee() (Assignee, bool) {
	if t.AssigneeType == nil || t.AssigneeID == nil {
		return Assignee{}, false
	}
	return Assignee{Kind: *t.AssigneeType, ID: *t.AssigneeID}, true
}

// SetAssignee replaces the assignee columns; nil clears them.
func (t *Task) SetAssignee(a *Assignee) {
	if a == nil {
		t.AssigneeType = nil
		t.AssigneeID = nil
		return
	}
	kind, id := a.Kind, a.ID
	t.AssigneeType = &kind
	t.AssigneeID = &id
}

func (t *Task) AssignedTo(userID string) bool {
	a, ok := t.Assignee()
	return ok && a.Kind == constants.AssigneeUser && a.ID == userID
}
