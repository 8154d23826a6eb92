package models

// Item is an auction listing. Dates are epoch milliseconds; there is no
// stored status column — open/ended is always derived from EndDate.
type Item struct {
	ItemID      int64   `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	Name        string  `gorm:"column:name;not null;type:varchar(255)" json:"name"`
	Description string  `gorm:"column:description;not null" json:"description"`
	StartingBid float64 `gorm:"column:starting_bid;not null" json:"starting_bid"`
	StartDate   int64   `gorm:"column:start_date;not null" json:"start_date"`
	EndDate     int64   `gorm:"column:end_date;not null" json:"end_date"`
	CreatorID   int64   `gorm:"column:creator_id;not null;index" json:"creator_id"`
}

func (Item) TableName() string {
	return "items"
}
