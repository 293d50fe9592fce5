package user

import (
	"github.com/marketbase/commerce/internal/user/repository"
	"github.com/marketbase/commerce/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
