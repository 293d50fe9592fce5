package product

import (
	"github.com/marketbase/commerce/internal/product/repository"
	"github.com/marketbase/commerce/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
