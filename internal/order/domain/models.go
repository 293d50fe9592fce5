package domain

import "time"

// DateFormat is the wire format for order timestamps.
const DateFormat = "2006-01-02 15:04:05"

// Order is a purchase placed by a user. OrderDate is assigned once at
// creation and never changes afterwards.
type Order struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderDate time.Time `json:"order_date" gorm:"not null"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
}

func (Order) TableName() string { return "orders" }

// FormattedDate renders OrderDate in the wire format.
func (o Order) FormattedDate() string {
	return o.OrderDate.Format(DateFormat)
}

// OrderProduct is a row in the orders_products join table. The composite
// primary key keeps a product from appearing twice in the same order.
type OrderProduct struct {
	OrderID   int64 `gorm:"primaryKey;autoIncrement:false"`
	ProductID int64 `gorm:"primaryKey;autoIncrement:false"`
}

func (OrderProduct) TableName() string { return "orders_products" }
