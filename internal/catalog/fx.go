package catalog

import (
	"github.com/nexcubelabs/nexcube/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(service.NewService),
)
