package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"hrms/internal/config"
	"hrms/internal/models"
	"hrms/internal/repository"
	"hrms/internal/server"
	"hrms/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	log := logrus.New()

	// Optional .env file for local development
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env file")
	}

	// Load configuration
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Seed the initial admin user when none exists yet
	userRepo := repository.NewUserRepository(db, logger)
	seedAdmin(userRepo, cfg, logger)

	// Initialize and run the server
	srv, err := server.NewServer(db, cfg, log, logger)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	srv.Run(cfg.Server.Port)
}

// seedAdmin creates the bootstrap admin account when no non-deleted admin
// exists. Failures are logged but do not stop startup: operators can always
// seed by hand.
func seedAdmin(users repository.UserRepository, cfg *config.Config, logger *zap.Logger) {
	count, err := users.CountAdmins()
	if err != nil {
		logger.Warn("Failed to count admin users, skipping seed", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	email := cfg.Seed.AdminEmail
	if email == "" {
		email = "admin@example.com"
	}
	password := cfg.Seed.AdminPassword
	if password == "" {
		password = "123456"
	}

	passwordHash, err := service.NewPasswordHasher().Hash(password)
	if err != nil {
		logger.Warn("Failed to hash seed admin password", zap.Error(err))
		return
	}

	role := models.RoleAdmin
	status := models.UserStatusActive
	_, err = users.Create(models.CreateUserInput{
		FullName: "Administrator",
		Email:    email,
		Password: password,
		Role:     &role,
		Status:   &status,
	}, passwordHash)
	if err != nil {
		logger.Warn("Failed to seed admin user", zap.Error(err))
		return
	}

	logger.Info("Seeded initial admin user", zap.String("email", email))
}
