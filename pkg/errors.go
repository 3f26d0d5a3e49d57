// Package pkg carries the shared application error type used by HTTP
// handlers to translate domain failures into JSON envelopes.
package pkg

import "net/http"

// AppError is a domain error enriched with the HTTP mapping handlers use.
//
// The wrapped Err is for logs only; ToHTTPError never serializes it, so
// internal error details cannot leak to callers.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// HTTPError is the JSON failure envelope.
//
// Client-side failures (4xx) carry the human-readable "message" field;
// server-side failures (5xx) carry "error" instead. Both always carry
// success=false.
type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Code: e.Code}
	if e.HTTPStatus >= http.StatusInternalServerError {
		out.Error = e.Message
	} else {
		out.Message = e.Message
	}
	return out
}
