package errors

import "net/http"

var ErrEmailTaken = &Exception{
	Message:    "email already registered, please use a different email",
	StatusCode: http.StatusConflict,
}
