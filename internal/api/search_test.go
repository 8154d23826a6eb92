package api

import (
	"net/http"
	"testing"

	"auctionary/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSearchValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	_, token := registerAndLogin(t, srv, "Seller", "Person", "seller@example.com")

	t.Run("invalid_status", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/search?status=CLOSED", nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("status_without_token", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/search?status=BID", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("status_with_stale_token", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/search?status=BID", nil, "no-such-token")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("status_is_case_insensitive", func(t *testing.T) {
		w := doJSON(t, srv, http.MethodGet, "/search?status=open", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSearchBuckets(t *testing.T) {
	srv, db := newTestServer(t)
	_, sellerToken := registerAndLogin(t, srv, "Seller", "Person", "seller@example.com")
	_, bidderToken := registerAndLogin(t, srv, "Bidder", "Person", "bidder@example.com")

	openItem := createItem(t, srv, sellerToken, "gramophone", 10)
	bidItem := createItem(t, srv, sellerToken, "typewriter", 5)
	endedItem := createItem(t, srv, sellerToken, "telescope", 50)

	w := doJSON(t, srv, http.MethodPost, "/item/"+itoa(bidItem)+"/bid", gin.H{"amount": 9}, bidderToken)
	require.Equal(t, http.StatusCreated, w.Code)
	endItem(t, db, endedItem)

	search := func(t *testing.T, query, token string) []store.SearchRow {
		t.Helper()
		w := doJSON(t, srv, http.MethodGet, "/search"+query, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var rows []store.SearchRow
		decodeJSON(t, w, &rows)
		return rows
	}

	t.Run("open_is_callers_live_listings", func(t *testing.T) {
		rows := search(t, "?status=OPEN", sellerToken)
		require.Len(t, rows, 2)
		// Most recent item first
		require.Equal(t, bidItem, rows[0].ItemID)
		require.Equal(t, openItem, rows[1].ItemID)

		// The bidder created nothing
		require.Empty(t, search(t, "?status=OPEN", bidderToken))
	})

	t.Run("bid_is_callers_live_participation", func(t *testing.T) {
		rows := search(t, "?status=BID", bidderToken)
		require.Len(t, rows, 1)
		require.Equal(t, bidItem, rows[0].ItemID)
		// Derived current bid reflects the placed bid
		require.Equal(t, 9.0, rows[0].CurrentBid)

		require.Empty(t, search(t, "?status=BID", sellerToken))
	})

	t.Run("archive_is_ended_involvement", func(t *testing.T) {
		rows := search(t, "?status=ARCHIVE", sellerToken)
		require.Len(t, rows, 1)
		require.Equal(t, endedItem, rows[0].ItemID)

		// The bidder neither created nor bid on the ended item
		require.Empty(t, search(t, "?status=ARCHIVE", bidderToken))
	})

	t.Run("text_query_is_case_insensitive_substring", func(t *testing.T) {
		rows := search(t, "?q=GRAMO", "")
		require.Len(t, rows, 1)
		require.Equal(t, openItem, rows[0].ItemID)
		require.Equal(t, "Seller", rows[0].FirstName)

		// Matches descriptions too
		rows = search(t, "?q=ordinary", "")
		require.Len(t, rows, 3)
	})

	t.Run("unfiltered_listing_most_recent_first", func(t *testing.T) {
		rows := search(t, "", "")
		require.Len(t, rows, 3)
		require.Equal(t, endedItem, rows[0].ItemID)
		require.Equal(t, bidItem, rows[1].ItemID)
		require.Equal(t, openItem, rows[2].ItemID)
		// No bids on this one: current bid falls back to starting bid
		require.Equal(t, 10.0, rows[2].CurrentBid)
	})

	t.Run("limit_and_offset", func(t *testing.T) {
		rows := search(t, "?limit=1&offset=1", "")
		require.Len(t, rows, 1)
		require.Equal(t, bidItem, rows[0].ItemID)
	})

	t.Run("invalid_paging_falls_back_to_defaults", func(t *testing.T) {
		rows := search(t, "?limit=-3&offset=banana", "")
		require.Len(t, rows, 3)
	})
}
