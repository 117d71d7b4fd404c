// Package response writes the JSON bodies shared by every endpoint.
//
// Successful reads and writes return the resource itself. Failures use a
// small envelope, except the storage-outage answer which carries the fixed
// problem body clients already depend on.
package response

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	UnavailableError   = "Database connection error"
	UnavailableMessage = "Can't connect to the database"
)

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Problem is the 503 body returned when the database cannot be reached.
type Problem struct {
	Timestamp    string `json:"timestamp"`
	Status       int    `json:"status"`
	Error        string `json:"error"`
	ErrorMessage string `json:"errorMessage"`
}

// now is swapped in tests.
var now = time.Now

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK sends a 200 with v.
func OK(w http.ResponseWriter, v interface{}) { JSON(w, http.StatusOK, v) }

// Created sends a 201 with v.
func Created(w http.ResponseWriter, v interface{}) { JSON(w, http.StatusCreated, v) }

// NoContent sends a bare 204.
func NoContent(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) }

// Error sends a JSON error envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, envelope{Status: status, Message: message})
}

// ValidationError sends a 400 with the field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusBadRequest, envelope{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// BadRequest sends a 400.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// Conflict sends a 409.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message)
}

// Unavailable sends the 503 database problem body.
func Unavailable(w http.ResponseWriter) {
	JSON(w, http.StatusServiceUnavailable, Problem{
		Timestamp:    now().UTC().Format(time.RFC3339),
		Status:       http.StatusServiceUnavailable,
		Error:        UnavailableError,
		ErrorMessage: UnavailableMessage,
	})
}
