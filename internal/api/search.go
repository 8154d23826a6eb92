package api

import (
	"net/http"
	"strings"
	"time"

	"auctionary/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	defaultSearchLimit  = 10
	defaultSearchOffset = 0
)

// Search handles GET /search. Authentication is optional, but any status
// filter requires a resolved token since the buckets are caller-relative.
func (h *Handler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	limit := queryInt(c, "limit", defaultSearchLimit)
	offset := queryInt(c, "offset", defaultSearchOffset)

	// Identify user if logged in
	var userID int64
	if token := c.GetHeader(AuthHeader); token != "" {
		user, err := h.store.UserByToken(token)
		if err != nil {
			serverError(c)
			return
		}
		if user != nil {
			userID = user.UserID
		}
	}

	if status != "" {
		if !store.ValidStatus(status) {
			c.Status(http.StatusBadRequest)
			return
		}
		if userID == 0 {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	rows, err := h.store.Search(store.SearchParams{
		Query:  query,
		Status: status,
		UserID: userID,
		Limit:  limit,
		Offset: offset,
		Now:    time.Now().UnixMilli(),
	})
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, rows)
}
