package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "taskboard.com/taskboard/internal/errors"
)

func requirePresent(v *apperrors.ValidationError, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.Add(field + " can't be blank")
		return false
	}
	return true
}

func requireMaxLength(v *apperrors.ValidationError, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		v.Add(fmt.Sprintf("%s is too long (maximum is %d characters)", field, max))
	}
}
