package dbfx

import (
	"go.uber.org/fx"

	"dermia/internal/infra"
)

var Module = fx.Provide(infra.InitPostgresql)
