package client

import (
	"github.com/nexcubelabs/nexcube/internal/client/repository"
	"github.com/nexcubelabs/nexcube/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
