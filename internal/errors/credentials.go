package errors

import "net/http"

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password.
var ErrInvalidCredentials = &Exception{
	Kind:       KindCredential,
	Message:    "Invalid email or password",
	StatusCode: http.StatusUnauthorized,
}

var ErrCurrentPasswordRequired = &Exception{
	Kind:       KindCredential,
	Message:    "Current password is required to change password",
	StatusCode: http.StatusUnprocessableEntity,
}

var ErrCurrentPasswordIncorrect = &Exception{
	Kind:       KindCredential,
	Message:    "Current password is incorrect",
	StatusCode: http.StatusUnprocessableEntity,
}

var ErrInternal = &Exception{
	Kind:       KindInternal,
	Message:    "internal error",
	StatusCode: http.StatusInternalServerError,
}
