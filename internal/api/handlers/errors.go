package handlers

import (
	"net/http"
)

// WriteError writes a standardized failure envelope.
// errs carries per-field detail and may be nil.
func WriteError(w http.ResponseWriter, statusCode int, message string, errs interface{}) {
	WriteJSON(w, statusCode, Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// WriteNotFound writes a 404 envelope
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message, nil)
}

// WriteInternalError writes a 500 envelope with a message safe for clients
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message, nil)
}
