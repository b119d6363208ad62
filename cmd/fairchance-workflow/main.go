package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fairchance-workflow/internal/config"
	"fairchance-workflow/internal/database"
	"fairchance-workflow/internal/events"
	httpapi "fairchance-workflow/internal/http"
	"fairchance-workflow/internal/identity"
	"fairchance-workflow/internal/logger"
	"fairchance-workflow/internal/repository"
	"fairchance-workflow/internal/service"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// devTokens are seeded at startup when SEED_DEV_DATA=true so the API is
// usable immediately against a fresh environment.
var devTokens = map[string]identity.Identity{
	"founder-admin-token": {UserID: "u-admin", TenantID: "tenant-acme", Role: "company_admin"},
	"coordinator-token":   {UserID: "u-coord", TenantID: "tenant-acme", Role: "coordinator"},
	"manager-token":       {UserID: "u-manager", TenantID: "tenant-acme", Role: "manager"},
}

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "fairchance-workflow")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := repository.InitSchema(ctx, db); err != nil {
		log.Fatal("schema init failed", zap.Error(err))
	}

	var (
		resolver  identity.Resolver
		publisher events.Publisher
	)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		redisResolver := identity.NewRedisResolver(redisClient)
		if cfg.SeedDevData {
			for token, id := range devTokens {
				if err := redisResolver.Seed(ctx, token, id, 0); err != nil {
					log.Warn("dev token seeding failed", zap.Error(err))
					break
				}
			}
		}
		resolver = redisResolver
		publisher = events.NewRedisPublisher(redisClient, cfg.Events.Stream, log)
		log.Info("redis enabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		staticResolver := identity.NewStaticResolver()
		if cfg.SeedDevData {
			for token, id := range devTokens {
				staticResolver.Upsert(token, id)
			}
		}
		resolver = staticResolver
		publisher = events.NopPublisher{}
		log.Info("redis disabled, using in-process token table")
	}

	// keep the alerter interface nil (not a typed nil) when the webhook is off
	var alerter service.CrisisAlerter
	if notifier := service.NewCrisisNotifier(cfg.CrisisWebhook, log); notifier != nil {
		alerter = notifier
	}

	referrals := service.NewReferralService(db, publisher, log)
	cases := service.NewCaseService(db, publisher, log)
	notes := service.NewNoteService(db, publisher, alerter, log)
	kpis := service.NewKPIService(db, log)

	var seedHandler *httpapi.SeedHandler
	if cfg.SeedDevData {
		seedHandler = httpapi.NewSeedHandler(service.NewSeedService(db, log), log)
	}

	router := httpapi.NewRouter(resolver, log)
	router.RegisterWorkflowRoutes(
		httpapi.NewReferralHandler(referrals, log),
		httpapi.NewCaseHandler(cases, log),
		httpapi.NewNoteHandler(notes, log),
		httpapi.NewKPIHandler(kpis, log),
		seedHandler,
	)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		cancel()
	case err := <-errCh:
		log.Error("server exited", zap.Error(err))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
}
