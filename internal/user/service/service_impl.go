package service

import (
	"context"
	"strings"

	orderdomain "github.com/marketbase/commerce/internal/order/domain"
	"github.com/marketbase/commerce/internal/user/domain"
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
		log:       p.Log.Named("user.service"),
		repo:      p.Repo,
		orderRepo: p.OrderRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	name, address, email, err := normalize(req.Name, req.Address, req.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	user := domain.User{
		Name:    name,
		Address: address,
		Email:   email,
	}
	if err := s.repo.Insert(ctx, s.db, &user); err != nil {
		return nil, err
	}

	s.log.Info("user created", zap.Int64("user_id", user.ID))
	return &user, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateUserRequest) (*domain.User, error) {
	name, address, email, err := normalize(req.Name, req.Address, req.Email)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	other, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != user.ID {
		return nil, domain.ErrEmailTaken
	}

	user.Name = name
	user.Address = address
	user.Email = email
	if err := s.repo.Update(ctx, s.db, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user. Users that still own orders are not deletable; the
// restrict policy keeps order rows from pointing at a missing user.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrNotFound
		}

		orders, err := s.orderRepo.CountByUser(ctx, tx, id)
		if err != nil {
			return err
		}
		if orders > 0 {
			return domain.ErrHasOrders
		}

		if err := s.repo.Delete(ctx, tx, id); err != nil {
			return err
		}

		s.log.Info("user deleted", zap.Int64("user_id", id))
		return nil
	})
}

func normalize(name, address, email string) (string, string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", "", domain.ErrInvalidName
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return "", "", "", domain.ErrInvalidAddress
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", "", "", domain.ErrInvalidEmail
	}
	return name, address, email, nil
}
