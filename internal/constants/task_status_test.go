package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		in   string
		want TaskStatus
	}{
		{"TODO", StatusTodo},
		{"todo", StatusTodo},
		{"pending", StatusTodo},
		{"IN_PROGRESS", StatusInProgress},
		{"in_progress", StatusInProgress},
		{"DONE", StatusDone},
		{"completed", StatusDone},
		{" archived ", StatusArchived},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTaskStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseTaskStatus("blocked")
	assert.Error(t, err)
}

func TestParseAssigneeKind(t *testing.T) {
	kind, err := ParseAssigneeKind("User")
	require.NoError(t, err)
	assert.Equal(t, AssigneeUser, kind)

	_, err = ParseAssigneeKind("Admin")
	assert.Error(t, err)
}
