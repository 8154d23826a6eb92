package store

import (
	"strings"
)

// Status buckets accepted by Search. All are caller-relative.
const (
	StatusOpen    = "OPEN"    // auctions the caller created that have not ended
	StatusBid     = "BID"     // auctions the caller has bid on that have not ended
	StatusArchive = "ARCHIVE" // ended auctions the caller created or bid on
)

// SearchParams describe one search request. Status is assumed validated by
// the caller; UserID is zero for unauthenticated searches.
type SearchParams struct {
	Query  string
	Status string
	UserID int64
	Limit  int
	Offset int
	Now    int64
}

// SearchRow is a listing row with the derived current bid.
type SearchRow struct {
	ItemID      int64   `json:"item_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	EndDate     int64   `json:"end_date"`
	CreatorID   int64   `json:"creator_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	CurrentBid  float64 `json:"current_bid"`
}

// Search composes the text and status filters into a single aggregate query.
// Rows come back most recent item first; current_bid falls back to the
// starting bid for items without bids.
func (s *Store) Search(p SearchParams) ([]SearchRow, error) {
	var conditions []string
	var args []any

	if p.Query != "" {
		pattern := "%" + strings.ToLower(p.Query) + "%"
		conditions = append(conditions, "(LOWER(i.name) LIKE ? OR LOWER(i.description) LIKE ?)")
		args = append(args, pattern, pattern)
	}

	switch p.Status {
	case StatusOpen:
		conditions = append(conditions, "i.creator_id = ?", "i.end_date > ?")
		args = append(args, p.UserID, p.Now)
	case StatusBid:
		conditions = append(conditions,
			"i.end_date > ?",
			"EXISTS (SELECT 1 FROM bids b WHERE b.item_id = i.item_id AND b.user_id = ?)")
		args = append(args, p.Now, p.UserID)
	case StatusArchive:
		conditions = append(conditions,
			"i.end_date <= ?",
			"(i.creator_id = ? OR EXISTS (SELECT 1 FROM bids b WHERE b.item_id = i.item_id AND b.user_id = ?))")
		args = append(args, p.Now, p.UserID, p.UserID)
	}

	sql := `
		SELECT
			i.item_id,
			i.name,
			i.description,
			i.end_date,
			i.creator_id,
			u.first_name,
			u.last_name,
			COALESCE(MAX(b.amount), i.starting_bid) AS current_bid
		FROM items i
		JOIN users u ON u.user_id = i.creator_id
		LEFT JOIN bids b ON b.item_id = i.item_id `
	if len(conditions) > 0 {
		sql += "WHERE " + strings.Join(conditions, " AND ") + " "
	}
	sql += `
		GROUP BY i.item_id, i.name, i.description, i.end_date, i.creator_id,
			u.first_name, u.last_name, i.starting_bid
		ORDER BY i.item_id DESC
		LIMIT ? OFFSET ?`
	args = append(args, p.Limit, p.Offset)

	var rows []SearchRow
	if err := s.db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []SearchRow{}
	}
	return rows, nil
}

// ValidStatus reports whether the status value names a known bucket.
func ValidStatus(status string) bool {
	switch status {
	case StatusOpen, StatusBid, StatusArchive:
		return true
	}
	return false
}
