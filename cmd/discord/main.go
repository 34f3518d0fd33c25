package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/ShopBot_Go/internal/chat"
	"github.com/osse101/ShopBot_Go/internal/discord"
	"github.com/osse101/ShopBot_Go/internal/logger"
)

const serviceName = "shopbot-discord"

// Version is set at build time
var Version = "dev"

func main() {
	if err := run(); err != nil {
		slog.Error("Discord bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file
	_ = godotenv.Load()

	setupLogger()

	cfg, err := discord.LoadConfig()
	if err != nil {
		return err
	}
	slog.Info("Configured API URL", "url", cfg.APIURL, "chat_transport", cfg.ChatTransport)
	if cfg.APIKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	bot, err := discord.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := discord.NewHTTPServer(cfg.HealthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, getCommandFactories())
	if cfg.ForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		// Bot can still run if commands are already registered
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Start(); err != nil {
		return err
	}
	defer bot.Stop()

	switch cfg.ChatTransport {
	case discord.ChatTransportNATS:
		conn, err := chat.ConnectNATS(cfg.NATSURL)
		if err != nil {
			return err
		}
		defer conn.Drain()

		listener := discord.NewNATSListener(conn, bot.Notifier)
		if err := listener.Start(); err != nil {
			return err
		}
		defer listener.Stop()
	default:
		bot.StartChatStream(ctx, cfg.APIURL, cfg.APIKey)
	}

	<-ctx.Done()
	slog.Info("Shutting down Discord bot")
	return nil
}

// setupLogger configures structured logging from LOG_LEVEL and LOG_FORMAT
func setupLogger() {
	env := os.Getenv("ENVIRONMENT")
	logger.Init(logger.NewConfig(
		os.Getenv("LOG_LEVEL"),
		os.Getenv("LOG_FORMAT"),
		serviceName,
		Version,
		env,
		env == "dev",
	), os.Stdout)
}

// getCommandFactories returns every slash command the bot offers
func getCommandFactories() []discord.CommandFactory {
	return []discord.CommandFactory{
		// Core commands
		discord.PingCommand,
		discord.StartCommand,
		discord.NameCommand,
		discord.StatusCommand,

		// World commands
		discord.WhereCommand,
		discord.ListCommand,
		discord.GoCommand,

		// Economy commands
		discord.BuyCommand,

		// Chat commands
		discord.SayCommand,
	}
}

// registerCommands adds all commands to the bot's registry
func registerCommands(bot *discord.Bot, factories []discord.CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
	slog.Info("Registered commands", "count", len(factories))
}
