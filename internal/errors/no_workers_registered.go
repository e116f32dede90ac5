package errors

import "net/http"

var ErrNoWorkersRegistered = &Exception{
	Message:    "no workers found to assign tasks to",
	StatusCode: http.StatusNotFound,
}
