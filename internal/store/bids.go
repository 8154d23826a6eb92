package store

// BidRow is a bid annotated with the bidder's display name.
type BidRow struct {
	ItemID    int64   `json:"item_id"`
	Amount    float64 `json:"amount"`
	Timestamp int64   `json:"timestamp"`
	UserID    int64   `json:"user_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
}

// HighestBid is the current winning bid for an item.
type HighestBid struct {
	Amount    float64
	UserID    int64
	FirstName string
	LastName  string
}

// HighestBidForItem returns the current winning bid with bidder details,
// or (nil, nil) when the item has no bids yet
func (s *Store) HighestBidForItem(itemID int64) (*HighestBid, error) {
	var bid HighestBid
	err := s.db.Table("bids b").
		Select("b.amount, b.user_id, u.first_name, u.last_name").
		Joins("JOIN users u ON u.user_id = b.user_id").
		Where("b.item_id = ?", itemID).
		Order("b.amount DESC, b.timestamp DESC").
		Limit(1).
		Take(&bid).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

// BidThreshold computes the amount a new bid must exceed: the maximum bid
// for the item, or the starting bid when no bid exists yet.
func (s *Store) BidThreshold(itemID int64) (float64, error) {
	var threshold float64
	err := s.db.Raw(`
		SELECT COALESCE(
			(SELECT MAX(amount) FROM bids WHERE item_id = ?),
			(SELECT starting_bid FROM items WHERE item_id = ?),
			0)`,
		itemID, itemID).Scan(&threshold).Error
	return threshold, err
}

// PlaceBid inserts the bid only while the amount still beats every committed
// bid (and the starting bid). The guard lives in the statement itself, so two
// concurrent bids can never both land at or below the committed maximum; the
// loser sees inserted=false and gets the same rejection as a stale pre-check.
func (s *Store) PlaceBid(itemID, userID int64, amount float64, timestamp int64) (bool, error) {
	result := s.db.Exec(`
		INSERT INTO bids (item_id, user_id, amount, timestamp)
		SELECT ?, ?, ?, ?
		WHERE ? > COALESCE(
			(SELECT MAX(amount) FROM bids WHERE item_id = ?),
			(SELECT starting_bid FROM items WHERE item_id = ?),
			0)`,
		itemID, userID, amount, timestamp, amount, itemID, itemID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// BidHistory lists all bids for an item, highest first, ties broken by most
// recent. Returns an empty slice (not nil) when there are none.
func (s *Store) BidHistory(itemID int64) ([]BidRow, error) {
	var rows []BidRow
	err := s.db.Table("bids b").
		Select("b.item_id, b.amount, b.timestamp, b.user_id, u.first_name, u.last_name").
		Joins("JOIN users u ON u.user_id = b.user_id").
		Where("b.item_id = ?", itemID).
		Order("b.amount DESC, b.timestamp DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []BidRow{}
	}
	return rows, nil
}
