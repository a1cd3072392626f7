package constants

import (
	"fmt"
	"strings"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
	StatusArchived   TaskStatus = "ARCHIVED"
)

var TaskStatuses = []TaskStatus{
	StatusTodo,
	StatusInProgress,
	StatusDone,
	StatusArchived,
}

// legacy values written by older clients
var legacyStatuses = map[string]TaskStatus{
	"pending":     StatusTodo,
	"in_progress": StatusInProgress,
	"completed":   StatusDone,
	"archived":    StatusArchived,
}

// ParseTaskStatus accepts the canonical names in any case as well as the
// legacy pending/in_progress/completed/archived names.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	v := strings.TrimSpace(raw)
	for _, s := range TaskStatuses {
		if strings.EqualFold(v, string(s)) {
			return s, nil
		}
	}
	if s, ok := legacyStatuses[strings.ToLower(v)]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown task status %q", raw)
}

func (s TaskStatus) Valid() bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}
