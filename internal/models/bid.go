package models

// Bid rows are append-only. The current bid for an item is never stored on
// the item; it is derived from the maximum amount here.
type Bid struct {
	BidID     int64   `gorm:"column:bid_id;primaryKey;autoIncrement" json:"-"`
	ItemID    int64   `gorm:"column:item_id;not null;index" json:"item_id"`
	UserID    int64   `gorm:"column:user_id;not null;index" json:"user_id"`
	Amount    float64 `gorm:"column:amount;not null" json:"amount"`
	Timestamp int64   `gorm:"column:timestamp;not null" json:"timestamp"`
}

func (Bid) TableName() string {
	return "bids"
}
