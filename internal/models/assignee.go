package model

import "taskboard.com/taskboard/internal/constants"

// Assignee is the weak reference from a task to the entity it is delegated to.
// Kind selects the table ID points into.
type Assignee struct {
	Kind constants.AssigneeKind
	ID   string
}

func UserAssignee(userID string) Assignee {
	return Assignee{Kind: constants.AssigneeUser, ID: userID}
}
