package main

import (
	"github.com/marketbase/commerce/internal/config"
	"github.com/marketbase/commerce/internal/logger"
	"github.com/marketbase/commerce/internal/migration"
	"github.com/marketbase/commerce/internal/order"
	"github.com/marketbase/commerce/internal/product"
	"github.com/marketbase/commerce/internal/server"
	"github.com/marketbase/commerce/internal/user"
	"github.com/marketbase/commerce/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		db.Module,
		migration.Module,

		// Domains
		user.Module,
		product.Module,
		order.Module,

		server.Module,
	)
	app.Run()
}
