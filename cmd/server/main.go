package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ValetTech/Valet/internal/api"
	"github.com/ValetTech/Valet/internal/config"
	"github.com/ValetTech/Valet/internal/repository"
	"github.com/ValetTech/Valet/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	v, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seed := repository.Snapshot{}
	if cfg.SeedFile != "" {
		seed, err = repository.LoadSnapshotFile(cfg.SeedFile)
		if err != nil {
			logrus.Fatalf("Failed to load seed data: %v", err)
		}
		logrus.WithField("listings", len(seed.Listings)).Info("Seed data loaded")
	}
	store, err := repository.NewStore(seed)
	if err != nil {
		logrus.Fatalf("Failed to initialize store: %v", err)
	}

	waitlistRepo := repository.NewMemoryWaitlistRepository()
	if cfg.DatabaseURL != "" {
		conn, err := repository.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logrus.Fatalf("Failed to connect to DB: %v", err)
		}
		defer conn.Close()
		waitlistRepo = repository.NewPostgresWaitlistRepository(conn)
		logrus.Info("Waitlist stored in Postgres")
	} else {
		logrus.Warn("DATABASE_URL not set, waitlist kept in memory")
	}

	var searchCache service.SearchCache
	if cfg.RedisAddr != "" {
		client, err := repository.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logrus.Errorf("Failed to connect to Redis: %v. Continuing without search cache...", err)
		} else {
			defer client.Close()
			searchCache = repository.NewSearchCacheRepository(client, cfg.SearchCacheTTL)
			logrus.Info("Search cache initialized")
		}
	}

	notifier := service.NewNotifier(service.NotifierConfig{
		SendGridAPIKey:    cfg.SendGridAPIKey,
		SendGridFromEmail: cfg.SendGridFromEmail,
		SendGridFromName:  cfg.SendGridFromName,
		TwilioAccountSID:  cfg.TwilioAccountSID,
		TwilioAuthToken:   cfg.TwilioAuthToken,
		TwilioFromNumber:  cfg.TwilioFromNumber,
	})
	sender := service.NewSenderService(notifier)
	policy := service.TransitionPolicy{Strict: cfg.StrictTransitions}

	listingSvc := service.NewListingService(store)
	reservationSvc := service.NewReservationService(store, policy)
	inquirySvc := service.NewInquiryService(store, policy, sender)
	querySvc := service.NewQueryService(store)
	waitlistSvc := service.NewWaitlistService(waitlistRepo, sender)
	gemini, err := service.NewGeminiSearcher(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	if err != nil {
		logrus.Fatalf("Failed to initialize search provider: %v", err)
	}
	if cfg.GeminiAPIKey == "" {
		logrus.Warn("GEMINI_API_KEY not set, nearby search will fail")
	}
	searchSvc := service.NewSearchService(gemini, searchCache, cfg.SearchTimeout)
	jobSvc := service.NewJobService(store)

	c := cron.New()
	if cfg.CompletionCron != "" {
		if _, err := c.AddFunc(cfg.CompletionCron, func() {
			jobSvc.CompleteFinishedReservations(time.Now())
		}); err != nil {
			logrus.Fatalf("Failed to schedule completion job: %v", err)
		}
		c.Start()
		logrus.WithField("schedule", cfg.CompletionCron).Info("Completion job scheduled")
	}

	handler := api.NewRouter(
		&api.UserHandler{
			Store:        store,
			Reservations: reservationSvc,
			Inquiries:    inquirySvc,
			Queries:      querySvc,
			Waitlist:     waitlistSvc,
			Search:       searchSvc,
		},
		&api.HostHandler{
			Listings:     listingSvc,
			Reservations: reservationSvc,
			Inquiries:    inquirySvc,
			Queries:      querySvc,
		},
		cfg.JWTSecret,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 3 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.SearchTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		logrus.Infof("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("error occurred while running http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit
	logrus.Info("Server shutting down")

	<-c.Stop().Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("error occurred on server shutting down: %v", err)
	}
}
