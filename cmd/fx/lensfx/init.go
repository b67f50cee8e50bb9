package lensfx

import (
	"github.com/PhotoScout/API/internal/repositories"
	"github.com/PhotoScout/API/internal/services"
	"github.com/PhotoScout/API/pkg/logger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideLensRepo, provideLensService)

func provideLensRepo(db *gorm.DB, logger logger.Logger) repositories.LensRepository {
	return repositories.NewLensRepository(db, logger)
}

func provideLensService(lensRepo repositories.LensRepository) services.LensServiceInterface {
	return services.NewLensService(lensRepo)
}
