package domain

import (
	"context"

	productdomain "github.com/marketbase/commerce/internal/product/domain"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Order, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Order, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID int64) ([]Order, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID int64) (int64, error)

	FindProducts(ctx context.Context, db *gorm.DB, orderID int64) ([]productdomain.Product, error)
	HasProduct(ctx context.Context, db *gorm.DB, orderID, productID int64) (bool, error)
	AddProduct(ctx context.Context, db *gorm.DB, orderID, productID int64) error
	RemoveProduct(ctx context.Context, db *gorm.DB, orderID, productID int64) (int64, error)
	RemoveProductFromAll(ctx context.Context, db *gorm.DB, productID int64) error
}
