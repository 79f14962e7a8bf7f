package auth

import (
	"github.com/nexcubelabs/nexcube/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(service.NewService),
)
