package betacodefx

import (
	"github.com/PhotoScout/API/internal/repositories"
	"github.com/PhotoScout/API/pkg/logger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideBetaCodeRepo)

func provideBetaCodeRepo(db *gorm.DB, logger logger.Logger) repositories.BetaCodeRepository {
	return repositories.NewBetaCodeRepository(db, logger)
}
