package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"noorcms/internal/repository"
	"noorcms/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps the error taxonomy onto HTTP status codes.
// Unexpected errors are logged and surfaced as a generic message.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrConflict):
		WriteError(w, "already exists", http.StatusConflict)
	default:
		log.Printf("internal error: %v", err)
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
