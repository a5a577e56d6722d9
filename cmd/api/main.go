package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"companyprofile/internal/app"
	"companyprofile/internal/config"
	"companyprofile/internal/database"
	"companyprofile/internal/media"
	"companyprofile/internal/pkg/jwt"
	"companyprofile/internal/pkg/logger"
	"companyprofile/internal/pkg/metrics"
	"companyprofile/internal/pkg/recaptcha"
	"companyprofile/internal/pkg/revocation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.LogPretty)
	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := app.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	store, err := media.New(ctx, cfg.Media)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Media.Driver).Msg("Failed to configure media store")
	}

	var revoked revocation.List = revocation.NewMemory()
	redisClient, err := revocation.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
		revoked = revocation.NewRedis(redisClient)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Token revocation backed by redis")
	}

	var verifier recaptcha.Verifier
	if cfg.Recaptcha.Secret != "" {
		verifier = recaptcha.New(cfg.Recaptcha.Secret, cfg.Recaptcha.VerifyURL, nil)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := app.NewRouter(app.Deps{
		Config:    cfg,
		DB:        db,
		Media:     store,
		JWT:       jwt.New(cfg.JWTSecret, cfg.JWTTTL),
		Revoked:   revoked,
		Recaptcha: verifier,
		Metrics:   metrics.New(reg),
		Gatherer:  reg,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("media", cfg.Media.Driver).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown server")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("Server stopped")
}
