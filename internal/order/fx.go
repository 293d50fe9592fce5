package order

import (
	"github.com/marketbase/commerce/internal/order/repository"
	"github.com/marketbase/commerce/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
