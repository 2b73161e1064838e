package config_fx

import (
	"go.uber.org/fx"

	"gymtrack/internal/config"
)

var Module = fx.Provide(config.Load)
