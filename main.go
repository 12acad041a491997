package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	hub "premise-hub/internal/hubService"
	"premise-hub/internal/notify"
	"premise-hub/internal/repository"
	"premise-hub/internal/server"
)

func main() {
	registry := repository.NewMemoryRegistry()

	webhook := notify.NewWebhook()
	dispatcher := notify.NewDispatcher(webhook)
	defer dispatcher.Close()

	hubService := hub.NewHubService(registry, dispatcher, configFromEnv())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go hubService.Run(ctx)

	router := server.SetupRouter(hubService, webhook)

	port := getPort()
	fmt.Printf("Starting premise hub on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// configFromEnv builds the hub configuration from env vars, falling back
// to the defaults for anything unset or unparsable.
func configFromEnv() hub.Config {
	cfg := hub.DefaultConfig()
	cfg.AuctionTime = durationEnv("AUCTION_TIME", cfg.AuctionTime)
	cfg.ExtendTime = durationEnv("EXTEND_TIME", cfg.ExtendTime)
	cfg.ConfirmWindow = durationEnv("CONFIRM_WINDOW", cfg.ConfirmWindow)
	cfg.TickInterval = durationEnv("TICK_INTERVAL", cfg.TickInterval)
	if v := os.Getenv("PROXIMITY_KM"); v != "" {
		if km, err := strconv.ParseFloat(v, 64); err == nil && km > 0 {
			cfg.ProximityKm = km
		}
	}
	return cfg
}

func durationEnv(name string, fallback time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
