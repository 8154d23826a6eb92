package store

import (
	"fmt"
	"testing"
	"time"

	"auctionary/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return New(db)
}

func seedItem(t *testing.T, s *Store, startingBid float64) (sellerID, bidderID, itemID int64) {
	t.Helper()

	seller := &models.User{FirstName: "Seller", LastName: "Person", Email: "seller@example.com", Password: "x", Salt: "y"}
	require.NoError(t, s.CreateUser(seller))
	bidder := &models.User{FirstName: "Bidder", LastName: "Person", Email: "bidder@example.com", Password: "x", Salt: "y"}
	require.NoError(t, s.CreateUser(bidder))

	item := &models.Item{
		Name:        "gramophone",
		Description: "wind-up gramophone",
		StartingBid: startingBid,
		StartDate:   time.Now().UnixMilli(),
		EndDate:     time.Now().Add(time.Hour).UnixMilli(),
		CreatorID:   seller.UserID,
	}
	require.NoError(t, s.CreateItem(item))
	return seller.UserID, bidder.UserID, item.ItemID
}

func TestBidThreshold(t *testing.T) {
	s := newTestStore(t)
	_, bidderID, itemID := seedItem(t, s, 10)

	threshold, err := s.BidThreshold(itemID)
	require.NoError(t, err)
	require.Equal(t, 10.0, threshold)

	inserted, err := s.PlaceBid(itemID, bidderID, 25, time.Now().UnixMilli())
	require.NoError(t, err)
	require.True(t, inserted)

	threshold, err = s.BidThreshold(itemID)
	require.NoError(t, err)
	require.Equal(t, 25.0, threshold)
}

// The insert itself carries the threshold guard, so a bid that became stale
// between the handler's read and the write is refused by the statement.
func TestPlaceBidGuardsAgainstStaleThreshold(t *testing.T) {
	s := newTestStore(t)
	_, bidderID, itemID := seedItem(t, s, 10)

	inserted, err := s.PlaceBid(itemID, bidderID, 20, time.Now().UnixMilli())
	require.NoError(t, err)
	require.True(t, inserted)

	// Equal to the current maximum: rejected
	inserted, err = s.PlaceBid(itemID, bidderID, 20, time.Now().UnixMilli())
	require.NoError(t, err)
	require.False(t, inserted)

	// Below the current maximum: rejected
	inserted, err = s.PlaceBid(itemID, bidderID, 15, time.Now().UnixMilli())
	require.NoError(t, err)
	require.False(t, inserted)

	history, err := s.BidHistory(itemID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, 20.0, history[0].Amount)
}

func TestHighestBidForItem(t *testing.T) {
	s := newTestStore(t)
	_, bidderID, itemID := seedItem(t, s, 10)

	highest, err := s.HighestBidForItem(itemID)
	require.NoError(t, err)
	require.Nil(t, highest)

	_, err = s.PlaceBid(itemID, bidderID, 30, time.Now().UnixMilli())
	require.NoError(t, err)

	highest, err = s.HighestBidForItem(itemID)
	require.NoError(t, err)
	require.NotNil(t, highest)
	require.Equal(t, 30.0, highest.Amount)
	require.Equal(t, bidderID, highest.UserID)
	require.Equal(t, "Bidder", highest.FirstName)
}
