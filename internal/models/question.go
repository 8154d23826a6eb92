package models

type Question struct {
	QuestionID int64   `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	ItemID     int64   `gorm:"column:item_id;not null;index" json:"item_id"`
	AskedBy    int64   `gorm:"column:asked_by;not null" json:"asked_by"`
	Question   string  `gorm:"column:question;not null" json:"question"`
	Answer     *string `gorm:"column:answer" json:"answer"`
}

func (Question) TableName() string {
	return "questions"
}
