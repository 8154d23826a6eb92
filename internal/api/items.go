package api

import (
	"net/http"
	"time"

	"auctionary/internal/models"
	"auctionary/internal/profanity"

	"github.com/gin-gonic/gin"
)

var itemFields = []string{"name", "description", "starting_bid", "end_date"}

// CreateItem handles POST /item
func (h *Handler) CreateItem(c *gin.Context) {
	b, ok := bindBody(c)
	if !ok {
		return
	}

	if b.hasExtraFields(itemFields...) {
		errorMessage(c, http.StatusBadRequest, "extra field")
		return
	}
	// Missing checks for every field first, then blank checks, in source order
	for _, field := range itemFields {
		if b.missing(field) {
			errorMessage(c, http.StatusBadRequest, "missing "+field)
			return
		}
	}
	for _, field := range itemFields {
		if b.blank(field) {
			errorMessage(c, http.StatusBadRequest, "blank "+field)
			return
		}
	}

	name := b.str("name")
	description := b.str("description")
	if profanity.ContainsBadLanguage(name) || profanity.ContainsBadLanguage(description) {
		errorMessage(c, http.StatusBadRequest, "item contains inappropriate language")
		return
	}

	startingBid, numOK := asNumber(b["starting_bid"])
	if !numOK || startingBid < 0 {
		errorMessage(c, http.StatusBadRequest, "invalid starting_bid")
		return
	}

	endDate, numOK := asNumber(b["end_date"])
	if !numOK || endDate < 0 {
		errorMessage(c, http.StatusBadRequest, "invalid end_date")
		return
	}

	now := time.Now().UnixMilli()
	if int64(endDate) < now {
		errorMessage(c, http.StatusBadRequest, "end_date in past")
		return
	}

	item := &models.Item{
		Name:        name,
		Description: description,
		StartingBid: startingBid,
		StartDate:   now,
		EndDate:     int64(endDate),
		CreatorID:   currentUserID(c),
	}
	if err := h.store.CreateItem(item); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item_id": item.ItemID})
}

// GetItemDetails handles GET /item/:id. The current bid and its holder are
// derived from the bid table on every read, never cached.
func (h *Handler) GetItemDetails(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	item, err := h.store.ItemByID(itemID)
	if err != nil {
		serverError(c)
		return
	}
	if item == nil {
		c.Status(http.StatusNotFound)
		return
	}

	highest, err := h.store.HighestBidForItem(itemID)
	if err != nil {
		serverError(c)
		return
	}

	currentBid := item.StartingBid
	var holder any
	if highest != nil {
		currentBid = highest.Amount
		holder = gin.H{
			"user_id":    highest.UserID,
			"first_name": highest.FirstName,
			"last_name":  highest.LastName,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id":            item.ItemID,
		"name":               item.Name,
		"description":        item.Description,
		"starting_bid":       item.StartingBid,
		"current_bid":        currentBid,
		"start_date":         item.StartDate,
		"end_date":           item.EndDate,
		"creator_id":         item.CreatorID,
		"first_name":         item.CreatorFirstName,
		"last_name":          item.CreatorLastName,
		"current_bid_holder": holder,
	})
}
