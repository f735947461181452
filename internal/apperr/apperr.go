// Package apperr defines the error taxonomy shared by services and handlers.
// Services return *Error values; the handler boundary maps Kind to an HTTP
// status and puts Message into the response envelope.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...interface{}) *Error {
	return newf(KindValidation, format, args...)
}

func Authf(format string, args ...interface{}) *Error {
	return newf(KindAuth, format, args...)
}

func Forbiddenf(format string, args ...interface{}) *Error {
	return newf(KindForbidden, format, args...)
}

func NotFoundf(format string, args ...interface{}) *Error {
	return newf(KindNotFound, format, args...)
}

func Conflictf(format string, args ...interface{}) *Error {
	return newf(KindConflict, format, args...)
}

func Internalf(format string, args ...interface{}) *Error {
	return newf(KindInternal, format, args...)
}

// KindOf classifies any error; non-taxonomy errors count as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
