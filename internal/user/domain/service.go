package domain

import (
	"context"
	"errors"
)

type CreateUserRequest struct {
	Name    string
	Address string
	Email   string
}

// UpdateUserRequest carries the full replacement field set; every mutable
// field is resupplied on update.
type UpdateUserRequest struct {
	Name    string
	Address string
	Email   string
}

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidAddress = errors.New("invalid_address")
	ErrInvalidEmail   = errors.New("invalid_email")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("user_not_found")
	ErrEmailTaken     = errors.New("duplicate_email")
	ErrHasOrders      = errors.New("user_has_orders")
)
