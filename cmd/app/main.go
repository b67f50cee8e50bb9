package main

import (
	"context"
	"log"

	"github.com/PhotoScout/API/cmd/fx/accountfx"
	"github.com/PhotoScout/API/cmd/fx/betacodefx"
	"github.com/PhotoScout/API/cmd/fx/configfx"
	"github.com/PhotoScout/API/cmd/fx/dbfx"
	"github.com/PhotoScout/API/cmd/fx/guidefx"
	"github.com/PhotoScout/API/cmd/fx/lensfx"
	"github.com/PhotoScout/API/cmd/fx/photofx"
	"github.com/PhotoScout/API/internal/infra"
	"github.com/PhotoScout/API/internal/services"
	"github.com/PhotoScout/API/pkg/logger"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, reading from environment variables")
	}

	app := fx.New(
		configfx.Module,
		dbfx.Module,
		accountfx.Module,
		betacodefx.Module,
		guidefx.Module,
		photofx.Module,
		lensfx.Module,

		fx.Invoke(StartApp),
	)

	app.Run()
}

// StartApp pulls the full service graph together and ties the database
// to the fx lifecycle.
func StartApp(
	lc fx.Lifecycle,
	db *gorm.DB,
	appLogger logger.Logger,
	accounts services.AccountServiceInterface,
	guides services.GuideServiceInterface,
	photos services.PhotoServiceInterface,
	lenses services.LensServiceInterface) {

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := infra.PingPostgresql(ctx, db); err != nil {
				return err
			}
			appLogger.Info("Database connection established")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			appLogger.Info("Shutting down")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}
