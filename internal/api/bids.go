package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PlaceBid handles POST /item/:id/bid
func (h *Handler) PlaceBid(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	b, ok := bindBody(c)
	if !ok {
		return
	}

	if b.hasExtraFields("amount") {
		errorMessage(c, http.StatusBadRequest, "extra field")
		return
	}
	if b.missing("amount") {
		errorMessage(c, http.StatusBadRequest, "missing amount")
		return
	}
	if b.blank("amount") {
		errorMessage(c, http.StatusBadRequest, "blank amount")
		return
	}
	amount, numOK := asNumber(b["amount"])
	if !numOK || amount <= 0 {
		errorMessage(c, http.StatusBadRequest, "invalid amount")
		return
	}

	item, err := h.store.ItemOwner(itemID)
	if err != nil {
		serverError(c)
		return
	}
	if item == nil {
		c.Status(http.StatusNotFound)
		return
	}

	// Users are not allowed to bid on their own items
	bidderID := currentUserID(c)
	if item.CreatorID == bidderID {
		c.Status(http.StatusForbidden)
		return
	}

	threshold, err := h.store.BidThreshold(itemID)
	if err != nil {
		serverError(c)
		return
	}
	// Strict increase required; ties are rejected
	if amount <= threshold {
		errorMessage(c, http.StatusBadRequest, "amount too low")
		return
	}

	inserted, err := h.store.PlaceBid(itemID, bidderID, amount, time.Now().UnixMilli())
	if err != nil {
		serverError(c)
		return
	}
	if !inserted {
		// A concurrent bid moved the threshold between the read and the insert
		errorMessage(c, http.StatusBadRequest, "amount too low")
		return
	}

	c.Status(http.StatusCreated)
}

// GetBidHistory handles GET /item/:id/bid
func (h *Handler) GetBidHistory(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	item, err := h.store.ItemOwner(itemID)
	if err != nil {
		serverError(c)
		return
	}
	if item == nil {
		c.Status(http.StatusNotFound)
		return
	}

	bids, err := h.store.BidHistory(itemID)
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, bids)
}
