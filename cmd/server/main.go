package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/aromatta/backend/internal/application/cart"
	catalogapp "github.com/aromatta/backend/internal/application/catalog"
	chatapp "github.com/aromatta/backend/internal/application/chat"
	favoritesapp "github.com/aromatta/backend/internal/application/favorites"
	identityapp "github.com/aromatta/backend/internal/application/identity"
	notificationapp "github.com/aromatta/backend/internal/application/notification"
	orderapp "github.com/aromatta/backend/internal/application/order"
	reviewapp "github.com/aromatta/backend/internal/application/review"
	"github.com/aromatta/backend/internal/infrastructure/auth"
	"github.com/aromatta/backend/internal/infrastructure/config"
	"github.com/aromatta/backend/internal/infrastructure/event"
	"github.com/aromatta/backend/internal/infrastructure/genai"
	"github.com/aromatta/backend/internal/infrastructure/kv"
	"github.com/aromatta/backend/internal/infrastructure/logger"
	"github.com/aromatta/backend/internal/infrastructure/telemetry"
	"github.com/aromatta/backend/internal/interfaces/http/handler"
	"github.com/aromatta/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Aromatta backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	ctx := context.Background()

	tracing, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		ServiceName:       cfg.Telemetry.ServiceName,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracing", zap.Error(err))
		}
	}()

	store, err := kv.NewStore(kv.Config{
		Backend:    kv.Backend(cfg.Storage.Backend),
		DataDir:    cfg.Storage.DataDir,
		SQLitePath: cfg.Storage.SQLitePath,
		Redis: kv.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	bus := event.NewInMemoryEventBus(log)
	if err := bus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		_ = bus.Stop(context.Background())
	}()

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		// Development convenience only; validate() rejects this in production.
		jwtSecret = randomSecret()
		log.Warn("jwt.secret not configured, sessions will not survive restarts")
	}
	jwtService := auth.NewJWTService(auth.Config{
		Secret:     jwtSecret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	catalogSvc, err := catalogapp.NewService(ctx, store, bus, log)
	if err != nil {
		log.Fatal("Failed to initialize catalog", zap.Error(err))
	}
	identitySvc, err := identityapp.NewService(ctx, store, jwtService, cfg.Auth.SimulatedLatency, log)
	if err != nil {
		log.Fatal("Failed to initialize identity", zap.Error(err))
	}
	cartSvc, err := cartapp.NewService(ctx, store, bus, catalogSvc, log)
	if err != nil {
		log.Fatal("Failed to initialize cart", zap.Error(err))
	}
	orderSvc, err := orderapp.NewService(ctx, store, bus, cartSvc, log)
	if err != nil {
		log.Fatal("Failed to initialize orders", zap.Error(err))
	}
	favoritesSvc, err := favoritesapp.NewService(ctx, store, catalogSvc, log)
	if err != nil {
		log.Fatal("Failed to initialize favorites", zap.Error(err))
	}
	reviewSvc, err := reviewapp.NewService(ctx, store, catalogSvc, log)
	if err != nil {
		log.Fatal("Failed to initialize reviews", zap.Error(err))
	}
	notificationSvc := notificationapp.NewService(log)

	bus.Subscribe(notificationapp.NewLowStockWatcher(notificationSvc, log))
	bus.Subscribe(notificationapp.NewOrderPlacedHandler(notificationSvc))

	var completer chatapp.Completer
	client, err := genai.NewClient(genai.Config{
		APIKey:          cfg.Chat.APIKey,
		Model:           cfg.Chat.Model,
		Endpoint:        cfg.Chat.Endpoint,
		MaxOutputTokens: cfg.Chat.MaxOutputTokens,
		Timeout:         cfg.Chat.Timeout,
	})
	if err != nil {
		// The storefront keeps working without the assistant; every chat
		// message just gets the fallback reply.
		log.Warn("Assistant unavailable", zap.Error(err))
		completer = unavailableCompleter{reason: err}
	} else {
		completer = client
	}
	chatSvc := chatapp.NewService(completer, cfg.Chat.Timeout, log)

	engine := router.New(cfg, log, jwtService, router.Handlers{
		System:       handler.NewSystemHandler(version),
		Auth:         handler.NewAuthHandler(identitySvc),
		Product:      handler.NewProductHandler(catalogSvc, reviewSvc),
		Cart:         handler.NewCartHandler(cartSvc),
		Order:        handler.NewOrderHandler(orderSvc),
		Favorite:     handler.NewFavoriteHandler(favoritesSvc),
		Notification: handler.NewNotificationHandler(notificationSvc),
		Review:       handler.NewReviewHandler(reviewSvc),
		Chat:         handler.NewChatHandler(chatSvc),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// unavailableCompleter stands in when no API key is configured
type unavailableCompleter struct {
	reason error
}

func (u unavailableCompleter) Complete(context.Context, string) (string, error) {
	return "", u.reason
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate session secret: " + err.Error())
	}
	return hex.EncodeToString(b)
}
