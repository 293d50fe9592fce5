package repository

import (
	"context"
	"errors"

	"github.com/marketbase/commerce/internal/order/domain"
	productdomain "github.com/marketbase/commerce/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Create(order).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Order, error) {
	var order domain.Order
	err := db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Order, error) {
	var orders []domain.Order
	err := db.WithContext(ctx).
		Model(&domain.Order{}).
		Order("id asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) FindByUser(ctx context.Context, db *gorm.DB, userID int64) ([]domain.Order, error) {
	var orders []domain.Order
	err := db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) CountByUser(ctx context.Context, db *gorm.DB, userID int64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *repo) FindProducts(ctx context.Context, db *gorm.DB, orderID int64) ([]productdomain.Product, error) {
	var products []productdomain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT p.id, p.product_name, p.price
		 FROM products p
		 JOIN orders_products op ON op.product_id = p.id
		 WHERE op.order_id = ?
		 ORDER BY p.id ASC`,
		orderID,
	).Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repo) HasProduct(ctx context.Context, db *gorm.DB, orderID, productID int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.OrderProduct{}).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Count(&count).Error
	return count > 0, err
}

func (r *repo) AddProduct(ctx context.Context, db *gorm.DB, orderID, productID int64) error {
	return db.WithContext(ctx).Create(&domain.OrderProduct{
		OrderID:   orderID,
		ProductID: productID,
	}).Error
}

func (r *repo) RemoveProduct(ctx context.Context, db *gorm.DB, orderID, productID int64) (int64, error) {
	res := db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&domain.OrderProduct{})
	return res.RowsAffected, res.Error
}

func (r *repo) RemoveProductFromAll(ctx context.Context, db *gorm.DB, productID int64) error {
	return db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&domain.OrderProduct{}).Error
}
