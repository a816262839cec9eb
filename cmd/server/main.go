package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resqconnect/internal/api"
	"resqconnect/internal/app/service"
	"resqconnect/internal/common/security"
	"resqconnect/internal/domain/repository"
	"resqconnect/internal/platform/config"
	"resqconnect/internal/platform/logging"
	"resqconnect/internal/platform/storage"
)

func main() {
	config.Load()
	log := logging.New(config.AppConfig.LogLevel)
	log.Info().Msg("configuration loaded")

	security.InitJWT()

	backend, err := storage.NewDiskBackend(config.AppConfig.DataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", config.AppConfig.DataDir).Msg("failed to open data directory")
	}

	userRepo := repository.NewJSONUserRepository(backend, log)
	alertRepo := repository.NewJSONAlertRepository(backend, log)
	eventRepo := repository.NewJSONEventRepository(backend, log)
	notificationRepo := repository.NewJSONNotificationRepository(backend, log)
	registrationRepo := repository.NewJSONRegistrationRepository(backend, log)

	authService := service.NewAuthService(userRepo, log)
	alertService := service.NewAlertService(alertRepo, userRepo, notificationRepo, log)
	eventService := service.NewEventService(eventRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	registrationService := service.NewRegistrationService(registrationRepo, eventRepo, userRepo)
	userService := service.NewUserService(userRepo)

	// Explicit startup initialization: seed empty collections, re-hash any
	// legacy plaintext passwords. Idempotent on every later boot.
	ctx := context.Background()
	if err := authService.InitUsers(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize user accounts")
	}
	if config.AppConfig.SeedDemoData {
		if err := alertRepo.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to seed alerts")
		}
		if err := eventRepo.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to seed events")
		}
		if err := notificationRepo.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to seed notifications")
		}
	}

	router := api.NewRouter(
		authService,
		alertService,
		eventService,
		notificationService,
		registrationService,
		userService,
	)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", config.AppConfig.APIPort).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-stop

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped gracefully")
}
