package migration

import (
	"github.com/marketbase/commerce/internal/config"
	orderdomain "github.com/marketbase/commerce/internal/order/domain"
	productdomain "github.com/marketbase/commerce/internal/product/domain"
	userdomain "github.com/marketbase/commerce/internal/user/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}
		// mysql and sqlite setups get the schema through gorm directly.
		return AutoMigrate(conn)
	}),
)

// AutoMigrate creates the four tables from the gorm models.
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&userdomain.User{},
		&productdomain.Product{},
		&orderdomain.Order{},
		&orderdomain.OrderProduct{},
	)
}
