package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"bloodalert/internal/adapter/repo"
	"bloodalert/internal/http/handlers"
	"bloodalert/internal/http/httpapi"
	"bloodalert/internal/infra"
	"bloodalert/internal/infra/geoip"
	"bloodalert/internal/notify"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	users := repo.NewUserRepository(runner)
	alerts := repo.NewAlertRepository(runner)
	responses := repo.NewResponseRepository(runner)
	notifications := repo.NewNotificationRepository(runner)
	stats := repo.NewStatsRepository(runner)

	notifier := notify.New(users, notifications, logger, cfg.DonorCooldown, cfg.MatchLimit)

	app := &handlers.App{
		Logger:        logger,
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
		Users:         users,
		Alerts:        alerts,
		Responses:     responses,
		Notifications: notifications,
		Stats:         stats,
		Notifier:      notifier,
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		app.GeoIP = resolver
		defer resolver.Close()
	}

	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
