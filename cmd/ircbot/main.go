package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ychalier/ircbot/internal/command"
	"github.com/ychalier/ircbot/internal/config"
	"github.com/ychalier/ircbot/internal/irc"
	"github.com/ychalier/ircbot/internal/logger"
	"github.com/ychalier/ircbot/internal/monitor"
	"github.com/ychalier/ircbot/internal/notify"
	"github.com/ychalier/ircbot/internal/storage"
	"github.com/ychalier/ircbot/internal/version"
)

func main() {
	configPath := flag.String("c", "./config.yaml", "Path to configuration file")
	flag.Parse()

	// A .env file is optional; plain environment overrides work without it.
	_ = godotenv.Load()

	if err := run(*configPath); err != nil {
		logger.Error("Bot terminated", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if err := version.Validate(); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	logger.Info("Starting", "build", version.Detailed())

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	usage, err := storage.OpenLog(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open usage log: %w", err)
	}

	registry, err := command.Defaults()
	if err != nil {
		return err
	}

	bus := notify.NewBus()
	bot := irc.NewBot(cfg, registry, bus, usage)

	if cfg.MonitorAddr != "" {
		monitor.Init()
		bus.Subscribe(monitor.Subscriber{})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		status := func() monitor.Status {
			return monitor.Status{
				State:    bot.State().String(),
				Nick:     bot.Nick(),
				Channels: bot.Channels(),
				Version:  version.Banner(),
			}
		}
		go func() {
			if err := monitor.Start(ctx, cfg.MonitorAddr, status); err != nil {
				logger.Error("Monitor server failed", "error", err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Received signal, shutting down", "signal", sig.String())
		bot.Shutdown(sig.String())
		os.Exit(0)
	}()

	return bot.Run()
}
