// File: handlers/errors.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"slotify/services/scheduling"
	"slotify/utils"
)

// bindStrictJSON decodes the request body into dst, rejecting unknown fields
// so document-shaped payloads cannot smuggle data past the typed boundary.
func bindStrictJSON(c *gin.Context, dst any) bool {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

// respondServiceError maps the scheduling error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	var notFoundErr *scheduling.NotFoundError
	var conflictErr *scheduling.ConflictError
	var transitionErr *scheduling.InvalidTransitionError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "validation failed", validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "not found", notFoundErr.Message)
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"message": conflictErr.Message,
			"type":    conflictErr.Type,
			"date":    conflictErr.Date,
			"slotKey": conflictErr.SlotKey,
		})
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid transition", transitionErr.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
