package service

import (
	"context"
	"strings"

	orderdomain "github.com/marketbase/commerce/internal/order/domain"
	"github.com/marketbase/commerce/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Repo      domain.Repository
	OrderRepo orderdomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	repo      domain.Repository
	orderRepo orderdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("product.service"),
		repo:      p.Repo,
		orderRepo: p.OrderRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	existing, err := s.repo.FindByName(ctx, s.db, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrNameTaken
	}

	product := domain.Product{
		ProductName: name,
		Price:       req.Price,
	}
	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		return nil, err
	}

	s.log.Info("product created", zap.Int64("product_id", product.ID))
	return &product, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	other, err := s.repo.FindByName(ctx, s.db, name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != product.ID {
		return nil, domain.ErrNameTaken
	}

	product.ProductName = name
	product.Price = req.Price
	if err := s.repo.Update(ctx, s.db, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the product along with any order associations that still
// reference it, so the join table never holds rows for a missing product.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		if err := s.orderRepo.RemoveProductFromAll(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, tx, id); err != nil {
			return err
		}

		s.log.Info("product deleted", zap.Int64("product_id", id))
		return nil
	})
}
