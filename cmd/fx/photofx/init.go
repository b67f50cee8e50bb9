package photofx

import (
	"github.com/PhotoScout/API/internal/repositories"
	"github.com/PhotoScout/API/internal/services"
	"github.com/PhotoScout/API/pkg/logger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	providePhotoRepo, providePhotoService)

func providePhotoRepo(db *gorm.DB, logger logger.Logger) repositories.PhotoRepository {
	return repositories.NewPhotoRepository(db, logger)
}

func providePhotoService(photoRepo repositories.PhotoRepository, logger logger.Logger) services.PhotoServiceInterface {
	return services.NewPhotoService(photoRepo, logger)
}
