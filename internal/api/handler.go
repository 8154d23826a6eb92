package api

import (
	"net/http"

	"auctionary/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler contains API handlers
type Handler struct {
	store *store.Store
}

// NewHandler creates a new API handler
func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

// errorMessage writes the machine-readable error body used across the API.
// The message strings are part of the contract.
func errorMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error_message": message})
}

// serverError is the terminal response for any unexpected persistence
// failure; internals are never leaked.
func serverError(c *gin.Context) {
	errorMessage(c, http.StatusInternalServerError, "server error")
}
