package database

import (
	"fmt"

	"hms-backend/config"
	"hms-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.Appointment{},
		&entity.LabTest{},
		&entity.Medicine{},
		&entity.Invoice{},
		&entity.Staff{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}
