package errors

import "net/http"

var ErrUnauthenticated = &Exception{
	Kind:       KindUnauthenticated,
	Message:    "Unauthorized",
	StatusCode: http.StatusUnauthorized,
}
