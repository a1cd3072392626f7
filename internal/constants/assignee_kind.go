package constants

import "fmt"

// AssigneeKind tags the entity a task is delegated to.
type AssigneeKind string

const (
	AssigneeUser AssigneeKind = "User"
)

func ParseAssigneeKind(raw string) (AssigneeKind, error) {
	switch AssigneeKind(raw) {
	case AssigneeUser:
		return AssigneeUser, nil
	default:
		return "", fmt.Errorf("unknown assignee type %q", raw)
	}
}
