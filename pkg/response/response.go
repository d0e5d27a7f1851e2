// Package response carries domain failures up to the page renderer.
package response

import (
	"errors"
	"net/http"
)

// Error is a failure that already knows the status page it renders as.
type Error struct {
	Code int
	Err  error
}

func NewError(code int, msg string) error {
	return &Error{Code: code, Err: errors.New(msg)}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same status and message, so package-level
// sentinels like ErrPostNotFound compare by value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code && e.Error() == t.Error()
}

// StatusOf reports the status carried anywhere in err's chain, or 500.
func StatusOf(err error) int {
	var respErr *Error
	if errors.As(err, &respErr) {
		return respErr.Code
	}
	return http.StatusInternalServerError
}
