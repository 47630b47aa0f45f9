package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/api"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/api/handler"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/service"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/infrastructure/config"
	mongodb "github.com/Madhesh0006/dbms-blood-donation-project/internal/infrastructure/db/mongo"
	redisdb "github.com/Madhesh0006/dbms-blood-donation-project/internal/infrastructure/db/redis"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/infrastructure/mail"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/infrastructure/queue"
	"github.com/Madhesh0006/dbms-blood-donation-project/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	userRepo := mongodb.NewUserRepository(db)
	donorRepo := mongodb.NewDonorRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	donationRepo := mongodb.NewDonationRepository(db)

	indexCtx, cancelIndex := context.WithTimeout(ctx, 30*time.Second)
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure user indexes")
	}
	if err := donorRepo.EnsureIndexes(indexCtx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure donor indexes")
	}
	cancelIndex()

	mailer := mail.NewMailgun(cfg.Mail.Domain, cfg.Mail.APIKey, cfg.Mail.Sender, cfg.Mail.SendTimeout)
	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, cfg.Notify.QueueSize, cfg.Mail.SendTimeout, mailer, log)
	dispatcher.Start(ctx)

	dedup := redisdb.NewNotificationDeduper(rdb, cfg.Notify.DedupTTL)

	// --- Core services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour, log)
	donorService := service.NewDonorService(userRepo, donorRepo, log)
	notifier := service.NewNotifier(dispatcher, dedup, log)
	requestService := service.NewRequestService(requestRepo, donationRepo, donorService, notifier, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		AuthService:    authService,
		DonorService:   donorService,
		RequestService: requestService,
		Readiness:      handler.NewReadinessHandler(db, rdb),
		JWTSecret:      cfg.JWTSecret,
		Logger:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("blood donation API started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
