package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-site/config"
	_ "portfolio-site/docs" // Important for Swagger
	v1 "portfolio-site/internal/delivery/http/v1"
	"portfolio-site/internal/usecase"
	"portfolio-site/pkg/discord"
	"portfolio-site/pkg/logger"
	"portfolio-site/pkg/siteconfig"
	"portfolio-site/web"
)

// @title           Portfolio Site API
// @version         1.0
// @description     Portfolio site backend relaying contact form submissions to Discord.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio site", "port", cfg.Port)

	// 3. Load site content
	content, err := siteconfig.Load(cfg.SiteConfigPath)
	if err != nil {
		logger.Log.Error("Failed to load site content", "error", err)
		os.Exit(1)
	}

	templates, err := web.Templates()
	if err != nil {
		logger.Log.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	// 4. Setup Webhook Client
	webhookClient := discord.NewClient(cfg.WebhookTimeout)
	if cfg.DiscordWebhookURL == "" {
		logger.Log.Warn("Discord webhook not configured - contact form submissions will fail")
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(webhookClient, cfg.DiscordWebhookURL)
	siteUC := usecase.NewSiteUsecase(content)
	healthUC := usecase.NewHealthUsecase(cfg.DiscordWebhookURL)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		SiteUC:    siteUC,
		HealthUC:  healthUC,
		Templates: templates,
		Static:    web.Static(),
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
