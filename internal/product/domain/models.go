package domain

// Product is a catalog item that can be attached to orders.
type Product struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductName string  `json:"product_name" gorm:"type:varchar(60);not null;index"`
	Price       float64 `json:"price" gorm:"not null"`
}

func (Product) TableName() string { return "products" }
