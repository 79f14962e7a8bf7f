package finance

import (
	"github.com/nexcubelabs/nexcube/internal/finance/repository"
	"github.com/nexcubelabs/nexcube/internal/finance/service"
	"go.uber.org/fx"
)

var Module = fx.Module("finance.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
