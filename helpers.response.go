package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// CustomResponseWriter is a wrapper for http.ResponseWriter. It is
// used to record response details like status code and body size.
type CustomResponseWriter struct {
	http.ResponseWriter
	code  int
	bytes int
	wrote bool
}

// NewCustomResponseWriter provides CustomResponseWriter with 200 as status code.
func NewCustomResponseWriter(rw http.ResponseWriter) *CustomResponseWriter {
	return &CustomResponseWriter{
		ResponseWriter: rw,
		code:           200,
	}
}

// WriteHeader implements http.WriteHeader interface.
func (cw *CustomResponseWriter) WriteHeader(code int) {
	if !cw.wrote {
		cw.code = code
		cw.wrote = true
		cw.ResponseWriter.WriteHeader(code)
	}
}

// Write implements http.Write interface.
func (cw *CustomResponseWriter) Write(bytes []byte) (int, error) {
	if !cw.wrote {
		cw.WriteHeader(cw.code)
	}
	n, err := cw.ResponseWriter.Write(bytes)
	cw.bytes += n
	return n, err
}

// Status returns the written status code.
func (cw *CustomResponseWriter) Status() int {
	return cw.code
}

// Bytes returns bytes written as response body.
func (cw *CustomResponseWriter) Bytes() int {
	return cw.bytes
}

// Unwrap returns native response writer and used by
// the http.ResponseController during its operation.
func (cw *CustomResponseWriter) Unwrap() http.ResponseWriter {
	return cw.ResponseWriter
}

// APIError is the data model sent when an error occurred during request processing.
type APIError struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails carries the failure cause. Message holds a single
// string, except for validation failures where it holds the full
// list of violations found in the payload.
type ErrorDetails struct {
	Message any `json:"message"`
	Status  int `json:"status"`
}

func NewAPIError(status int, message any) *APIError {
	return &APIError{
		Error: ErrorDetails{
			Message: message,
			Status:  status,
		},
	}
}

// BookResponse wraps a single book record.
type BookResponse struct {
	Book Book `json:"book"`
}

// BooksResponse wraps the full list of book records.
type BooksResponse struct {
	Books []Book `json:"books"`
}

// MessageResponse carries a terse human readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteResponse is used to send a success api response to client. It sets the
// status code to 499 (Nginx non standard: Client Closed Request) in case the
// client cancelled the request, and to 504 if the request processing timed out.
func WriteResponse(ctx context.Context, w http.ResponseWriter, status int, resp any) error {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			w.WriteHeader(http.StatusGatewayTimeout)
		} else {
			w.WriteHeader(499)
		}
		return ctx.Err()
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(resp)
}

// WriteErrorResponse is used to send an error response to client with the
// same cancellation and timeout handling as WriteResponse.
func WriteErrorResponse(ctx context.Context, w http.ResponseWriter, errResp *APIError) error {
	return WriteResponse(ctx, w, errResp.Error.Status, errResp)
}
