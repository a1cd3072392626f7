package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "User not found",
	StatusCode: http.StatusNotFound,
}

var ErrProjectNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "Project not found",
	StatusCode: http.StatusNotFound,
}

var ErrTaskNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "Task not found",
	StatusCode: http.StatusNotFound,
}
