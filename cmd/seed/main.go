package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"companyprofile/internal/app"
	"companyprofile/internal/config"
	"companyprofile/internal/database"
	"companyprofile/internal/domain/admin"
	"companyprofile/internal/pkg/logger"
)

// seed creates an admin account, or resets its password when it exists.
//
//	go run ./cmd/seed -email admin@example.com -password secret
func main() {
	email := flag.String("email", os.Getenv("SEED_ADMIN_EMAIL"), "admin email")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}

	log.Info().Msg("Running AutoMigrate...")
	if err := app.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	svc := admin.NewService(admin.NewRepository(db))
	a, created, err := svc.Upsert(context.Background(), *email, *password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin")
	}

	if created {
		log.Info().Int64("id", a.ID).Str("email", a.Email).Msg("Admin created")
	} else {
		log.Info().Int64("id", a.ID).Str("email", a.Email).Msg("Admin password reset")
	}
}
