package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/fastline/analytics-engine/internal/adapters/cache"
	adapterHTTP "github.com/fastline/analytics-engine/internal/adapters/handler/http"
	"github.com/fastline/analytics-engine/internal/adapters/repository"
	"github.com/fastline/analytics-engine/internal/core/domain"
	"github.com/fastline/analytics-engine/internal/core/services"
)

//	@title			Fastline Analytics Engine API
//	@version		1.0
//	@description	Read-only body-composition and fast-effectiveness analytics over fasting tracker data.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	startTime := time.Now()

	// Missing .env is fine; the shell environment wins.
	_ = godotenv.Load()

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	serverPort := os.Getenv("PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	var rdb *redis.Client
	rdb, err = cache.NewRedisClient(cache.Config{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err != nil {
		log.Printf("[CACHE] Redis unavailable, running without cache and rate limits: %v", err)
		rdb = nil
	} else {
		defer rdb.Close()
	}

	fastRepo := repository.NewPostgresFastRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)

	var bodyLogRepo domain.BodyLogStore = repository.NewPostgresBodyLogRepository(db)
	if rdb != nil {
		bodyLogRepo = repository.NewCachedBodyLogRepository(bodyLogRepo, rdb)
	}

	analyticsService := services.NewAnalyticsService(fastRepo, bodyLogRepo, profileRepo)
	analyticsHandler := adapterHTTP.NewAnalyticsHandler(analyticsService)

	var verifier *services.TokenVerifier
	if secret := os.Getenv("AUTH_SECRET"); secret != "" {
		verifier = services.NewTokenVerifier(secret, os.Getenv("AUTH_ISSUER"))
	} else {
		log.Println("[AUTH] AUTH_SECRET not set, trusting X-User-ID headers (development mode)")
	}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AnalyticsHandler: analyticsHandler,
		TokenVerifier:    verifier,
		DB:               db,
		Redis:            rdb,
		StartTime:        startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Fastline Analytics Engine running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
