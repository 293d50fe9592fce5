package domain

import (
	"context"
	"errors"
)

type CreateProductRequest struct {
	ProductName string
	Price       float64
}

type UpdateProductRequest struct {
	ProductName string
	Price       float64
}

type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Update(ctx context.Context, id int64, req UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrInvalidName = errors.New("invalid_product_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("product_not_found")
	ErrNameTaken   = errors.New("duplicate_product_name")
)
