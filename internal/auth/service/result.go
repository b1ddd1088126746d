package service

import "net/http"

// Status classifies an operation outcome independently of transport.
type Status int

const (
	StatusOK Status = iota
	StatusInvalid
	StatusUnauthorized
	StatusNotFound
	StatusConflict
	StatusInternal
)

// HTTP maps the classification onto a response status code.
func (s Status) HTTP() int {
	switch s {
	case StatusOK:
		return http.StatusOK
	case StatusInvalid:
		return http.StatusBadRequest
	case StatusUnauthorized:
		return http.StatusUnauthorized
	case StatusNotFound:
		return http.StatusNotFound
	case StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Result is what every orchestrator operation returns: a status
// classification, a caller-facing message, and a session token when
// authentication succeeded.
type Result struct {
	Status  Status
	Message string
	Token   string
}

func ok(message string) Result {
	return Result{Status: StatusOK, Message: message}
}

func invalid(message string) Result {
	return Result{Status: StatusInvalid, Message: message}
}

func unauthorized(message string) Result {
	return Result{Status: StatusUnauthorized, Message: message}
}

func notFound(message string) Result {
	return Result{Status: StatusNotFound, Message: message}
}

func conflict(message string) Result {
	return Result{Status: StatusConflict, Message: message}
}

func internal(message string) Result {
	return Result{Status: StatusInternal, Message: message}
}
