package domain

import (
	"context"
	"errors"

	productdomain "github.com/marketbase/commerce/internal/product/domain"
)

type CreateOrderRequest struct {
	UserID int64
}

type Service interface {
	Create(ctx context.Context, req CreateOrderRequest) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	Products(ctx context.Context, orderID int64) ([]productdomain.Product, error)
	AddProduct(ctx context.Context, orderID, productID int64) (*productdomain.Product, error)
	RemoveProduct(ctx context.Context, orderID, productID int64) (*productdomain.Product, error)
}

var (
	ErrInvalidID         = errors.New("invalid_order_id")
	ErrNotFound          = errors.New("order_not_found")
	ErrProductInOrder    = errors.New("product_already_in_order")
	ErrProductNotInOrder = errors.New("product_not_in_order")
)
