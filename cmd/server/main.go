package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mailprism/mailprism/internal/ai"
	"github.com/mailprism/mailprism/internal/api"
	"github.com/mailprism/mailprism/internal/brandcache"
	"github.com/mailprism/mailprism/internal/classify"
	"github.com/mailprism/mailprism/internal/config"
	"github.com/mailprism/mailprism/internal/engine"
	"github.com/mailprism/mailprism/internal/repository/postgres"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	ln.Close()
	return nil
}

func main() {
	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := checkPortAvailable(cfg.Server.Host, cfg.Server.Port); err != nil {
		log.Fatalf("%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Brand classification cache: memory by default, Postgres when a database
	// is configured, Redis hot layer on top when enabled.
	var cache brandcache.Store = brandcache.NewMemoryStore()
	var emailRepo *postgres.EmailRepo

	if cfg.Database.Enabled && cfg.Database.URL != "" {
		db, err := sql.Open("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}

		pgCache := brandcache.NewPostgresStore(db)
		if err := pgCache.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to create cache schema: %v", err)
		}
		cache = pgCache

		emailRepo = postgres.NewEmailRepo(db)
		if err := emailRepo.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to create emails schema: %v", err)
		}
		log.Println("PostgreSQL storage initialized")
	}

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unavailable (%v), continuing without hot cache", err)
		} else {
			cache = brandcache.NewRedisLayer(rdb, cache, cfg.Redis.TTL())
			log.Printf("Redis cache layer enabled (addr=%s ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
		}
	}

	var aic ai.Classifier
	if cfg.Bedrock.Enabled {
		bedrock, err := ai.NewBedrockClassifier(ctx, cfg.Bedrock.Region, cfg.Bedrock.ModelID)
		if err != nil {
			log.Printf("Bedrock unavailable (%v), continuing with deterministic passes only", err)
		} else {
			aic = bedrock
		}
	}

	pipeline := engine.New(engine.Options{
		Cache: cache,
		AI:    aic,
		IndustryConfig: classify.IndustryConfig{
			MinKeywordScore:   cfg.Classifier.MinKeywordScore,
			AmbiguityRatio:    cfg.Classifier.AmbiguityRatio,
			FuzzyMinSubstring: cfg.Classifier.FuzzyMinSubstring,
			SharedWordMinLen:  cfg.Classifier.SharedWordMinLen,
		},
		CampaignConfig: classify.CampaignConfig{
			SubjectWeight: cfg.Classifier.SubjectWeight,
			PreviewWeight: cfg.Classifier.PreviewWeight,
			BodyWeight:    cfg.Classifier.BodyWeight,
		},
	})

	handlers := api.NewHandlers(pipeline, cache, emailRepo)
	router := api.SetupRoutes(handlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Println("All services initialized, server is ready")

	<-done
	log.Println("Shutting down...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
