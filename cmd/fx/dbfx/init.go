package dbfx

import (
	"github.com/PhotoScout/API/internal/infra"
	"github.com/PhotoScout/API/pkg/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
