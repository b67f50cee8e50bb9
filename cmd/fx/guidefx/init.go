package guidefx

import (
	"github.com/PhotoScout/API/internal/repositories"
	"github.com/PhotoScout/API/internal/services"
	"github.com/PhotoScout/API/pkg/logger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideGuideRepo, provideGuideService)

func provideGuideRepo(db *gorm.DB, logger logger.Logger) repositories.GuideRepository {
	return repositories.NewGuideRepository(db, logger)
}

func provideGuideService(
	guideRepo repositories.GuideRepository,
	photoRepo repositories.PhotoRepository,
	logger logger.Logger) services.GuideServiceInterface {
	return services.NewGuideService(guideRepo, photoRepo, logger)
}
