package errors

import "net/http"

var ErrWorkerNotFound = &Exception{
	Message:    "worker not found",
	StatusCode: http.StatusNotFound,
}
