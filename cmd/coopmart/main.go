package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/koperasi/coopmart/config"
	"github.com/koperasi/coopmart/internal/auth"
	"github.com/koperasi/coopmart/internal/gateway"
	handler "github.com/koperasi/coopmart/internal/handler/http"
	"github.com/koperasi/coopmart/internal/logger"
	"github.com/koperasi/coopmart/internal/middleware"
	"github.com/koperasi/coopmart/internal/queue"
	"github.com/koperasi/coopmart/internal/repository"
	"github.com/koperasi/coopmart/internal/repository/postgres"
	"github.com/koperasi/coopmart/internal/service"
	"github.com/koperasi/coopmart/internal/worker"
	rd "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// development fallback, overridden by AUTH_TOKEN_KEY
const devAuthTokenKey = "f53ac685bbceebd75043e6be2e06ee07"

func main() {
	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context cancelled on shutdown signals
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Log.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	if err := db.Migrate(); err != nil {
		logger.Log.Fatal("Error migrating database", zap.Error(err))
	}

	authKey := cfg.AuthTokenKey
	if authKey == "" {
		authKey = devAuthTokenKey
	}
	tokenKey, err := hex.DecodeString(authKey)
	if err != nil {
		logger.Log.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	rdb := rd.NewClient(&rd.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	producer := queue.NewProducer(cfg.KafkaBrokers, cfg.NotifyTopic)
	defer producer.Close()

	gatewayClient := gateway.NewClient(cfg.GatewayAddr, cfg.GatewayServerKey, cfg.FinishURL)

	// dependency injection
	// checkout
	orderRepo := repository.NewOrderRepository(db)
	checkoutService := service.NewCheckoutService(orderRepo)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	// payment token
	paymentService := service.NewPaymentService(orderRepo, gatewayClient)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// webhook reconciliation
	eventRepo := repository.NewEventRepository(db)
	webhookService := service.NewWebhookService(orderRepo, eventRepo, cfg.GatewayServerKey)
	webhookHandler := handler.NewWebhookHandler(webhookService)

	// notification dispatch
	taskRepo := repository.NewTaskRepository(db)
	dispatcher := worker.NewNotificationDispatcher(taskRepo, producer)
	go dispatcher.Run(ctx)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger.Log))

	// gateway notifications are authenticated by signature, not by session
	router.Post("/api/payment/notifications", webhookHandler.Notify())

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth(token))
		group.With(middleware.RateLimit(rdb, cfg.CheckoutLimit, cfg.CheckoutWindow)).
			Post("/api/orders", checkoutHandler.Checkout())
		group.Post("/api/orders/{number}/payment", paymentHandler.IssueToken())
	})

	logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))

	server := &http.Server{Addr: cfg.ServerAddr, Handler: router}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
