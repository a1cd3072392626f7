package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindForbidden       Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindValidation      Kind = "VALIDATION"
	KindCredential      Kind = "CREDENTIAL"
	KindInternal        Kind = "INTERNAL"
)

type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// Extensions is picked up by the GraphQL executor and rendered under
// errors[].extensions.
func (e *Exception) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": string(e.Kind),
	}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func KindOf(err error) Kind {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return KindValidation
	}
	return KindInternal
}

// Messages flattens err into the strings a mutation payload reports.
func Messages(err error) []string {
	if err == nil {
		return []string{}
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Messages
	}
	return []string{err.Error()}
}
