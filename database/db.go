package database

import (
	"fmt"
	"log/slog" // use slog for structured logging

	"portfoliohub/internal/config"
	"portfoliohub/internal/httpapi/models"
	"portfoliohub/internal/middleware/auth"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Comment{},
		&models.Like{},
		&models.About{},
		&models.Notification{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

// SeedAdmin creates the bootstrap admin account on first start. A blank
// seed password disables seeding entirely.
func SeedAdmin(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.SeedAdminPassword == "" {
		logger.Info("SEED_ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", cfg.SeedAdminEmail).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: cfg.SeedAdminUsername,
		Email:    cfg.SeedAdminEmail,
		Password: hashed,
		IsAdmin:  true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("Bootstrap admin account created", "email", cfg.SeedAdminEmail)
	return nil
}
