package service

import (
	"context"
	"time"

	"github.com/marketbase/commerce/internal/order/domain"
	productdomain "github.com/marketbase/commerce/internal/product/domain"
	userdomain "github.com/marketbase/commerce/internal/user/domain"
	"github.com/marketbase/commerce/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Repo        domain.Repository
	UserRepo    userdomain.Repository
	ProductRepo productdomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	repo        domain.Repository
	userRepo    userdomain.Repository
	productRepo productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("order.service"),
		repo:        p.Repo,
		userRepo:    p.UserRepo,
		productRepo: p.ProductRepo,
	}
}

// Create places a new order for an existing user. The referenced user must be
// present; order_date is assigned here and is immutable afterwards.
func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, userdomain.ErrNotFound
	}

	order := domain.Order{
		OrderDate: time.Now().UTC().Truncate(time.Second),
		UserID:    user.ID,
	}
	if err := s.repo.Insert(ctx, s.db, &order); err != nil {
		return nil, err
	}

	s.log.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
	)
	return &order, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, userdomain.ErrNotFound
	}
	return s.repo.FindByUser(ctx, s.db, userID)
}

func (s *Service) Products(ctx context.Context, orderID int64) ([]productdomain.Product, error) {
	order, err := s.repo.FindByID(ctx, s.db, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.FindProducts(ctx, s.db, orderID)
}

// AddProduct attaches a product to an order. Both sides must exist and the
// pair must not already be associated.
func (s *Service) AddProduct(ctx context.Context, orderID, productID int64) (*productdomain.Product, error) {
	var product *productdomain.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.repo.FindByID(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		product, err = s.productRepo.FindByID(ctx, tx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return productdomain.ErrNotFound
		}

		attached, err := s.repo.HasProduct(ctx, tx, orderID, productID)
		if err != nil {
			return err
		}
		if attached {
			return domain.ErrProductInOrder
		}

		if err := s.repo.AddProduct(ctx, tx, orderID, productID); err != nil {
			// Concurrent attach of the same pair lands on the composite key.
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrProductInOrder
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("product added to order",
		zap.Int64("order_id", orderID),
		zap.Int64("product_id", productID),
	)
	return product, nil
}

// RemoveProduct detaches a product from an order. Removing a product that is
// not associated with the order reports not-found rather than silently
// succeeding.
func (s *Service) RemoveProduct(ctx context.Context, orderID, productID int64) (*productdomain.Product, error) {
	var product *productdomain.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.repo.FindByID(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		product, err = s.productRepo.FindByID(ctx, tx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return productdomain.ErrNotFound
		}

		removed, err := s.repo.RemoveProduct(ctx, tx, orderID, productID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return domain.ErrProductNotInOrder
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("product removed from order",
		zap.Int64("order_id", orderID),
		zap.Int64("product_id", productID),
	)
	return product, nil
}
