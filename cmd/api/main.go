package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schedcal/config"
	"schedcal/internal/httpserver"
	"schedcal/pkg/gcalendar"
	"schedcal/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting schedcal...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Schedule store: %s", cfg.Storage.Path)

	// 3. Google Calendar mirror (optional)
	var mirror *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		mirror, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			mirror = nil
		} else {
			logger.Info(ctx, "Google Calendar mirror initialized")
		}
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		RateLimitPerMin:  cfg.HTTPServer.RateLimitPerMin,
		StoragePath:      cfg.Storage.Path,
		Calendar:         cfg.Calendar,
		TimeGrid:         cfg.TimeGrid,
		Mirror:           mirror,
		MirrorCalendarID: cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
