package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"smriti/app/repositories"
	"smriti/app/services"
)

// Helper functions for consistent response handling

func sendSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]interface{}{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	json.NewEncoder(w).Encode(body)
}

func sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// sendServiceError maps service-layer errors onto HTTP status codes. The
// error text is the user-facing message.
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case services.IsValidationError(err),
		errors.Is(err, services.ErrContactRequired),
		errors.Is(err, services.ErrIdentifierRequired):
		sendError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrIncorrectCredentials):
		sendError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotPostAuthor):
		sendError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailRegistered):
		sendError(w, http.StatusConflict, err.Error())
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, "Resource not found")
	default:
		sendError(w, http.StatusInternalServerError, "Internal server error")
	}
}
