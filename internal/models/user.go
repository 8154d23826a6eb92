package models

type User struct {
	UserID       int64   `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	FirstName    string  `gorm:"column:first_name;not null;type:varchar(255)" json:"first_name"`
	LastName     string  `gorm:"column:last_name;not null;type:varchar(255)" json:"last_name"`
	Email        string  `gorm:"column:email;uniqueIndex;not null;type:varchar(255)" json:"email"`
	Password     string  `gorm:"column:password;not null;type:varchar(255)" json:"-"`
	Salt         string  `gorm:"column:salt;not null;type:varchar(64)" json:"-"`
	SessionToken *string `gorm:"column:session_token;type:varchar(64)" json:"-"`
}

func (User) TableName() string {
	return "users"
}
