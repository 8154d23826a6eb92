package store

import (
	"auctionary/internal/models"
)

// ItemDetails is an item joined with its creator's display name.
type ItemDetails struct {
	ItemID           int64   `json:"item_id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	StartingBid      float64 `json:"starting_bid"`
	StartDate        int64   `json:"start_date"`
	EndDate          int64   `json:"end_date"`
	CreatorID        int64   `json:"creator_id"`
	CreatorFirstName string  `json:"first_name"`
	CreatorLastName  string  `json:"last_name"`
}

// ItemOwner is the minimal projection used for existence and ownership checks.
type ItemOwner struct {
	ItemID    int64
	CreatorID int64
}

// ItemSummary is the row shape shared by profile listings.
type ItemSummary struct {
	ItemID      int64  `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	EndDate     int64  `json:"end_date"`
	CreatorID   int64  `json:"creator_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

// CreateItem inserts a new auction item and fills in the generated id
func (s *Store) CreateItem(item *models.Item) error {
	return s.db.Create(item).Error
}

// ItemByID returns an item with its creator's name, or (nil, nil) if absent
func (s *Store) ItemByID(id int64) (*ItemDetails, error) {
	var details ItemDetails
	err := s.db.Table("items i").
		Select("i.item_id, i.name, i.description, i.starting_bid, i.start_date, i.end_date, i.creator_id, u.first_name AS creator_first_name, u.last_name AS creator_last_name").
		Joins("JOIN users u ON u.user_id = i.creator_id").
		Where("i.item_id = ?", id).
		Take(&details).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// ItemOwner fetches just enough of an item to check existence and ownership
func (s *Store) ItemOwner(id int64) (*ItemOwner, error) {
	var owner ItemOwner
	err := s.db.Table("items").
		Select("item_id, creator_id").
		Where("item_id = ?", id).
		Take(&owner).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// Selling lists open auctions the user created
func (s *Store) Selling(userID, now int64) ([]ItemSummary, error) {
	var rows []ItemSummary
	err := s.db.Table("items i").
		Select("i.item_id, i.name, i.description, i.end_date, i.creator_id, u.first_name, u.last_name").
		Joins("JOIN users u ON u.user_id = i.creator_id").
		Where("i.creator_id = ? AND i.end_date > ?", userID, now).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []ItemSummary{}
	}
	return rows, nil
}

// BiddingOn lists open auctions the user has at least one bid on
func (s *Store) BiddingOn(userID, now int64) ([]ItemSummary, error) {
	var rows []ItemSummary
	err := s.db.Table("bids b").
		Select("DISTINCT i.item_id, i.name, i.description, i.end_date, i.creator_id, u.first_name, u.last_name").
		Joins("JOIN items i ON i.item_id = b.item_id").
		Joins("JOIN users u ON u.user_id = i.creator_id").
		Where("b.user_id = ? AND i.end_date > ?", userID, now).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []ItemSummary{}
	}
	return rows, nil
}

// AuctionsEnded lists auctions the user created whose end date has passed
func (s *Store) AuctionsEnded(userID, now int64) ([]ItemSummary, error) {
	var rows []ItemSummary
	err := s.db.Table("items i").
		Select("i.item_id, i.name, i.description, i.end_date, i.creator_id, u.first_name, u.last_name").
		Joins("JOIN users u ON u.user_id = i.creator_id").
		Where("i.creator_id = ? AND i.end_date <= ?", userID, now).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []ItemSummary{}
	}
	return rows, nil
}
