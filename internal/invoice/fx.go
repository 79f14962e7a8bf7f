package invoice

import (
	"github.com/nexcubelabs/nexcube/internal/invoice/render"
	"github.com/nexcubelabs/nexcube/internal/invoice/repository"
	"github.com/nexcubelabs/nexcube/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewRenderer),
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
