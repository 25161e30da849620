/**
 * @description
 * This is the main entry point for the wallet-service. It is responsible for
 * initializing all components of the service, including configuration, the
 * wallet repository (PostgreSQL, or in-memory sandbox mode when no database
 * is configured), the bank confirmation provider, the Redis rate limiter, the
 * RabbitMQ event producer, and the HTTP server. It wires everything together
 * and starts the service.
 *
 * @dependencies
 * - log, net/http: Standard Go libraries for logging and HTTP server functionality.
 * - github.com/go-chi/chi/v5: For HTTP routing.
 * - github.com/jackc/pgx/v5: PostgreSQL driver.
 * - internal/api, internal/app, internal/config, internal/store: Internal packages.
 * - pkg/bankgateway: Client for the external bank confirmation gateway.
 * - pkg/rabbitmq: Client for RabbitMQ.
 */

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rentreturn/wallet-service/internal/api"
	"github.com/rentreturn/wallet-service/internal/app"
	"github.com/rentreturn/wallet-service/internal/config"
	"github.com/rentreturn/wallet-service/internal/store"
	"github.com/rentreturn/wallet-service/pkg/bankgateway"
	rrrabbit "github.com/rentreturn/wallet-service/pkg/rabbitmq"
)

func main() {
	// Load application configuration from environment variables.
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"config load failed\" err=%v", err)
	}

	log.Printf("level=info component=bootstrap msg=\"starting wallet-service\" port=%s", cfg.ServerPort)

	// Establish the wallet repository. A missing DATABASE_URL puts the
	// service in sandbox mode with an in-memory ledger that resets on
	// restart.
	var repository store.Repository
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Println("level=warn component=bootstrap msg=\"database url missing; running sandbox in-memory ledger\" env=DATABASE_URL")
		repository = store.NewMemoryRepository()
	} else {
		poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("level=fatal component=bootstrap msg=\"database url parse failed\" err=%v", err)
		}

		poolConfig.MaxConns = 50
		poolConfig.MinConns = 10
		poolConfig.MaxConnLifetime = 30 * time.Minute
		poolConfig.MaxConnIdleTime = 5 * time.Minute

		// Disable prepared statement caching to prevent conflicts behind
		// connection poolers.
		poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

		dbpool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			log.Fatalf("level=fatal component=bootstrap msg=\"database connection failed\" err=%v", err)
		}
		defer dbpool.Close()
		log.Println("level=info component=bootstrap msg=\"database connected\"")

		repository = store.NewPostgresRepository(dbpool)
	}

	// Initialize the RabbitMQ producer to publish wallet events. The broker
	// is optional; without it, downstream notifications degrade silently.
	var producer rrrabbit.Publisher
	if strings.TrimSpace(cfg.RabbitMQURL) == "" {
		log.Println("level=warn component=bootstrap msg=\"rabbitmq url missing; wallet events disabled\" env=RABBITMQ_URL")
	} else {
		rabbitProducer, err := rrrabbit.NewEventProducer(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("level=warn component=bootstrap msg=\"rabbitmq producer unavailable; wallet events disabled\" err=%v", err)
		} else {
			defer rabbitProducer.Close()
			producer = rabbitProducer
			log.Println("level=info component=bootstrap msg=\"rabbitmq producer connected\"")
		}
	}

	// Pick the bank confirmation provider: the real gateway when configured,
	// otherwise the latency-and-failure simulation.
	var confirmer app.ConfirmationProvider
	if strings.TrimSpace(cfg.BankGatewayURL) != "" {
		confirmer = app.NewGatewayConfirmation(bankgateway.NewClient(cfg.BankGatewayURL, cfg.BankGatewayAPIKey))
		log.Printf("level=info component=bootstrap msg=\"using bank gateway confirmations\" url=%s", cfg.BankGatewayURL)
	} else {
		confirmer = app.NewSimulatedBankConfirmation(
			time.Duration(cfg.ConfirmationMinDelayMs)*time.Millisecond,
			time.Duration(cfg.ConfirmationMaxDelayMs)*time.Millisecond,
			cfg.ConfirmationSuccessRate,
		)
		log.Printf("level=info component=bootstrap msg=\"using simulated bank confirmations\" success_rate=%.2f", cfg.ConfirmationSuccessRate)
	}

	// Initialize the core application service with its dependencies.
	walletService := app.NewService(repository, confirmer, producer, cfg.SeedBalance)

	// Optional Redis-backed rate limiting on wallet operations.
	if cfg.WalletOpRateLimit > 0 {
		if strings.TrimSpace(cfg.RedisURL) == "" {
			log.Println("level=warn component=bootstrap msg=\"redis url missing; wallet rate limiting disabled\" env=REDIS_URL")
		} else {
			redisOptions, parseErr := redis.ParseURL(cfg.RedisURL)
			if parseErr != nil {
				log.Printf("level=warn component=bootstrap msg=\"redis url parse failed; wallet rate limiting disabled\" err=%v", parseErr)
			} else {
				redisClient := redis.NewClient(redisOptions)
				pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancelPing()
				if pingErr := redisClient.Ping(pingCtx).Err(); pingErr != nil {
					log.Printf("level=warn component=bootstrap msg=\"redis ping failed; wallet rate limiting disabled\" err=%v", pingErr)
					redisClient.Close()
				} else {
					defer redisClient.Close()
					walletService.SetRateLimiter(
						app.NewRedisWalletRateLimiter(redisClient, cfg.RedisRateLimitPrefix),
						cfg.WalletOpRateLimit,
						time.Duration(cfg.WalletOpRateLimitWindowMin)*time.Minute,
					)
					log.Println("level=info component=bootstrap msg=\"redis connected\"")
				}
			}
		}
	}

	// Initialize the API handlers.
	walletHandlers := api.NewWalletHandlers(walletService)

	// Set up the HTTP router and define the API routes.
	router := chi.NewRouter()
	router.Mount("/wallet", api.WalletRoutes(walletHandlers, cfg.AuthJWKSURL))

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("level=info component=http msg=\"server listening\" addr=%s", serverAddr)

	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("level=fatal component=http msg=\"server stopped unexpectedly\" err=%v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("level=info component=http msg=\"shutdown started\"")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("level=error component=http msg=\"shutdown failed\" err=%v", err)
	}

	log.Println("level=info component=http msg=\"shutdown complete\"")
}
