package database

import (
	"context"
	"time"

	"github.com/kybermartin/python-editor/internal/config"
	"github.com/kybermartin/python-editor/internal/models"
	"github.com/kybermartin/python-editor/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect() {
	dsn := config.AppConfig.DatabaseURL
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to get underlying sql.DB")
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	DB = db
	logger.Info().Msg("Connected to PostgreSQL with connection pooling (max: 25, idle: 10)")
}

// Migrate creates the users and scripts tables if they do not exist.
// There is no migration tool; schema changes mean manual intervention.
func Migrate() {
	if err := DB.AutoMigrate(&models.User{}, &models.Script{}); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database schema")
	}
	logger.Info().Msg("Database migrations complete")
}

// Close releases the underlying connection pool. Called on shutdown.
func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// Session returns a request-scoped handle bound to ctx so in-flight
// queries are tied to the request that issued them.
func Session(ctx context.Context) *gorm.DB {
	return DB.WithContext(ctx)
}
