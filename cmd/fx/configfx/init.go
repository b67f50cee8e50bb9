package configfx

import (
	"github.com/PhotoScout/API/pkg/config"
	"github.com/PhotoScout/API/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideConfig, provideLogger)

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideLogger(cfg *config.Config) (logger.Logger, error) {
	return logger.New(cfg.Logger)
}
