package errors

import "net/http"

var ErrForbidden = &Exception{
	Kind:       KindForbidden,
	Message:    "Admin only",
	StatusCode: http.StatusForbidden,
}
