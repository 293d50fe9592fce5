package domain

// User is a registered customer account.
type User struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"type:varchar(50);not null"`
	Address string `json:"address" gorm:"type:varchar(150);not null"`
	Email   string `json:"email" gorm:"type:varchar(50);not null;index"`
}

func (User) TableName() string { return "users" }
