package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Ankit-Silwal/yapify-backend/config"
	"github.com/Ankit-Silwal/yapify-backend/internal/api"
	chatRepository "github.com/Ankit-Silwal/yapify-backend/internal/chat/repository"
	chatUsecase "github.com/Ankit-Silwal/yapify-backend/internal/chat/usecase"
	"github.com/Ankit-Silwal/yapify-backend/internal/otp"
	"github.com/Ankit-Silwal/yapify-backend/internal/realtime"
	"github.com/Ankit-Silwal/yapify-backend/internal/session"
	userRepository "github.com/Ankit-Silwal/yapify-backend/internal/user/repository"
	userUsecase "github.com/Ankit-Silwal/yapify-backend/internal/user/usecase"
	"github.com/Ankit-Silwal/yapify-backend/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// postgres
	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		appLogger.Fatalf("failed to ping postgres: %v", err)
	}
	cancel()

	// redis: the session and otp stores fall back to memory when it is
	// down, so an unreachable redis only degrades, never blocks startup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancel = context.WithTimeout(ctx, 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		appLogger.Warn("redis unreachable at startup, sessions degrade to the in-memory store", "addr", cfg.Redis.Addr, "err", err)
	}
	cancel()

	// stores and managers
	memoryFallback := session.NewMemoryStore(time.Minute)
	defer memoryFallback.Close()

	sessions := session.NewManager(
		session.NewRedisStore(redisClient),
		memoryFallback,
		cfg.Session.TTL,
		cfg.Session.HealthCheckInterval,
		appLogger,
	)
	defer sessions.Close()

	codes := otp.NewManager(otp.NewRedisStore(redisClient), cfg.OTP.TTL, cfg.OTP.CodeLength)

	// repositories and usecases
	chatRepo := chatRepository.NewChatRepository(db, appLogger)
	membership := chatUsecase.NewMembershipUsecase(chatRepo, appLogger)
	messages := chatUsecase.NewMessageUsecase(chatRepo, appLogger)

	userRepo := userRepository.NewUserRepository(db, appLogger)
	accounts := userUsecase.NewUserUsecase(userRepo, sessions, codes, appLogger)

	// realtime
	hub := realtime.NewHub()
	gateway := realtime.NewGateway(hub, sessions, membership, messages, appLogger)

	// http surface
	secureCookies := cfg.Server.Environment == "production"
	authHandler := api.NewAuthHandler(accounts, sessions, cfg.Session.TTL, secureCookies, appLogger)
	chatHandler := api.NewChatHandler(membership, messages)
	router := api.NewRouter(authHandler, chatHandler, sessions, gateway.ServeWS)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("server listening", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("graceful shutdown failed: %v", err)
	}
	appLogger.Info("server stopped")
}
