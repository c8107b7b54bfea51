package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

// ErrInvalidID is returned when a path id is not a positive integer
var ErrInvalidID = errors.New("invalid id")

// Envelope is the body of every API response
type Envelope struct {
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Message string      `json:"message"`
	Success bool        `json:"success"`
}

// FieldErrors maps a request field to its validation messages
type FieldErrors map[string][]string

// Add records a message for field
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// WriteJSON writes v with the given status
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent
		logger.Log.Warnf("Failed to encode response: %v", err)
	}
}

// WriteSuccess writes a success envelope
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	WriteJSON(w, statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WriteValidationError writes a 422 envelope listing every bad field
func WriteValidationError(w http.ResponseWriter, fields FieldErrors) {
	WriteError(w, http.StatusUnprocessableEntity, "validation failed", fields)
}

// ParseIDParam reads a positive int64 chi URL parameter
func ParseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
