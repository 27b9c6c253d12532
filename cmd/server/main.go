package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumina/creatorhub/internal/ai"
	"github.com/lumina/creatorhub/internal/api"
	"github.com/lumina/creatorhub/internal/auth"
	"github.com/lumina/creatorhub/internal/billing"
	"github.com/lumina/creatorhub/internal/cache"
	"github.com/lumina/creatorhub/internal/config"
	"github.com/lumina/creatorhub/internal/demo"
	"github.com/lumina/creatorhub/internal/engine"
	"github.com/lumina/creatorhub/internal/feeds"
	"github.com/lumina/creatorhub/internal/repository/postgres"
	"github.com/lumina/creatorhub/internal/service/calendar"
	"github.com/lumina/creatorhub/internal/service/deal"
	"github.com/lumina/creatorhub/internal/service/profile"
	"github.com/lumina/creatorhub/internal/storage"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Repositories: Postgres when enabled, otherwise the seeded demo
	// workspace so the product works out of the box.
	var (
		profileRepo profile.Repository
		rateRepo    profile.RateHistoryRepository
		dealRepo    deal.Repository
		postRepo    calendar.Repository
		db          *sql.DB
		demoState   *demo.Workspace
	)

	if cfg.Database.Enabled && cfg.Database.URL != "" {
		db, err = sql.Open("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("Database unreachable: %v", err)
		}
		defer db.Close()

		profileRepo = postgres.NewCreatorRepo(db)
		rateRepo = postgres.NewRateHistoryRepo(db)
		dealRepo = postgres.NewDealRepo(db)
		postRepo = postgres.NewPostRepo(db)
		log.Println("Postgres storage initialized")
	} else {
		demoState = demo.New(auth.DemoUserID)
		profileRepo = demoState.Profiles()
		rateRepo = demoState.Rates()
		dealRepo = demoState.Deals()
		postRepo = demoState.Posts()
		log.Println("Demo workspace initialized (Postgres disabled)")
	}

	// Inspiration feeds
	var inspiration calendar.InspirationSource
	if cfg.Feeds.Enabled {
		inspiration = feeds.NewService(&cfg.Feeds)
	}

	// Core services
	profileSvc := profile.NewService(profileRepo, rateRepo)
	dealSvc := deal.NewService(dealRepo)
	calendarSvc := calendar.NewService(postRepo, inspiration)

	composer, err := engine.NewPitchComposer()
	if err != nil {
		log.Fatalf("Failed to build pitch composer: %v", err)
	}

	handlers := api.NewHandlers(profileSvc, dealSvc, calendarSvc, composer)
	handlers.SetConfig(cfg)
	if demoState != nil {
		handlers.SetDemoWorkspace(demoState)
	}

	// Redis cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unreachable, caching disabled: %v", err)
		} else {
			handlers.SetCache(cache.New(redisClient, cfg.Redis.TTL()))
			log.Println("Redis cache initialized")
		}
	}

	// AI content tools
	if cfg.OpenAI.Enabled && cfg.OpenAI.APIKey != "" {
		handlers.SetAIClient(ai.NewClient(&cfg.OpenAI))
		log.Println("AI content tools initialized")
	}

	// Billing webhooks
	if cfg.Billing.Enabled {
		handlers.SetBillingReceiver(billing.NewReceiver(db, profileSvc))
		log.Println("Billing webhook receiver initialized")
	}

	// Media-kit storage
	if cfg.Storage.Enabled && cfg.Storage.S3Bucket != "" {
		store, err := storage.NewStore(ctx, &cfg.Storage)
		if err != nil {
			log.Printf("Media storage unavailable: %v", err)
		} else {
			handlers.SetMediaStore(store)
			log.Println("Media-kit storage initialized")
		}
	}

	// Auth
	var authManager *auth.Manager
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	authManager = auth.NewManager(&cfg.Auth, baseURL)
	authManager.CleanupExpiredSessions()

	server := api.NewServer(handlers, authManager)

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.GetHost(), cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
