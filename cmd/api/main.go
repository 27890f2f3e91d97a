package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mdourado/box-geotag-service/internal/adapter/handler"
	"github.com/mdourado/box-geotag-service/internal/infrastructure/auth"
	"github.com/mdourado/box-geotag-service/internal/infrastructure/boxclient"
	"github.com/mdourado/box-geotag-service/internal/infrastructure/config"
	"github.com/mdourado/box-geotag-service/internal/infrastructure/metadata"
	"github.com/mdourado/box-geotag-service/internal/infrastructure/observability"
	"github.com/mdourado/box-geotag-service/internal/infrastructure/server"
	"github.com/mdourado/box-geotag-service/internal/usecase/file"
	"github.com/mdourado/box-geotag-service/internal/usecase/oauth"
	"github.com/mdourado/box-geotag-service/internal/usecase/webhook"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Infrastructure services
	boxClient := boxclient.New(cfg.Box)
	extractor := metadata.NewExtractor()
	verifier := auth.NewSignatureVerifier(cfg.Box.WebhookSecret)

	// Use cases
	fileSvc := file.NewService(boxClient, cfg.Box.FolderID)
	oauthSvc := oauth.NewService(boxClient, logger)
	webhookSvc := webhook.NewService(boxClient, extractor, verifier, logger)

	// Handlers
	fileHandler := handler.NewFileHandler(fileSvc)
	oauthHandler := handler.NewOAuthHandler(oauthSvc)
	webhookHandler := handler.NewWebhookHandler(webhookSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		FileHandler:    fileHandler,
		OAuthHandler:   oauthHandler,
		WebhookHandler: webhookHandler,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.Engine(),
		Logger:       logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
