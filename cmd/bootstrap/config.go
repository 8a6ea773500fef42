package bootstrap

import (
	"card-tracker/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.AppConfig {
			return cfg.App
		},
	),
)
