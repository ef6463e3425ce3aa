package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the single error shape returned by every endpoint.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type SuccessBody struct {
	Success bool `json:"success"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Success writes {"success":true}.
func Success(w http.ResponseWriter) {
	JSON(w, http.StatusOK, SuccessBody{Success: true})
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Error: message})
}

func ValidationError(w http.ResponseWriter, message string, fields map[string]string) {
	if message == "" {
		message = "Validation failed"
	}
	JSON(w, http.StatusBadRequest, ErrorBody{Error: message, Fields: fields})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Invalid request body"
	}
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not found"
	}
	Error(w, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message)
}
