package accountfx

import (
	"github.com/PhotoScout/API/internal/repositories"
	"github.com/PhotoScout/API/internal/services"
	"github.com/PhotoScout/API/pkg/config"
	"github.com/PhotoScout/API/pkg/logger"
	"github.com/PhotoScout/API/pkg/utils"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideUserRepo, provideTokenIssuer, provideAccountService)

func provideUserRepo(db *gorm.DB, logger logger.Logger) repositories.UserRepository {
	return repositories.NewUserRepository(db, logger)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL())
}

func provideAccountService(
	userRepo repositories.UserRepository,
	betaCodeRepo repositories.BetaCodeRepository,
	tokenIssuer *utils.TokenIssuer,
	logger logger.Logger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, betaCodeRepo, tokenIssuer, logger)
}
