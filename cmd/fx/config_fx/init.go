package config_fx

import (
	"go.uber.org/fx"

	"shootbook/internal/config"
)

var Module = fx.Provide(config.Load)
