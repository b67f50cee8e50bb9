package infra

import (
	"context"
	"log"

	"github.com/PhotoScout/API/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func PingPostgresql(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
