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

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/aegis-tracker/internal/clients/assistant"
	"github.com/KirkDiggler/aegis-tracker/internal/clients/dnd5e"
	"github.com/KirkDiggler/aegis-tracker/internal/clients/github"
	"github.com/KirkDiggler/aegis-tracker/internal/config"
	"github.com/KirkDiggler/aegis-tracker/internal/handlers/discord"
	"github.com/KirkDiggler/aegis-tracker/internal/logging"
	"github.com/KirkDiggler/aegis-tracker/internal/metrics"
	"github.com/KirkDiggler/aegis-tracker/internal/repositories/sessions"
	"github.com/KirkDiggler/aegis-tracker/internal/services"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(logging.Config{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("No .env file found")
	}
	logger.Info("Starting tracker",
		zap.String("app_id", cfg.Discord.AppID),
		zap.String("guild_id", cfg.Discord.GuildID),
		zap.String("session_id", cfg.Session.ID),
		zap.String("assistant", cfg.Assistant.Provider),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if cfg.Metrics.Addr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr, logger); err != nil {
				logger.Error("Metrics server stopped", zap.Error(err))
			}
		}()
	}

	// Only the assistant credential is fatal
	narrator, err := assistant.New(ctx, &assistant.Config{
		Provider: cfg.Assistant.Provider,
		APIKey:   cfg.Assistant.APIKey(),
		Model:    cfg.Assistant.Model,
		BaseURL:  cfg.Assistant.BaseURL,
		Timeout:  cfg.Assistant.Timeout,
	})
	if err != nil {
		logger.Fatal("Failed to create assistant client", zap.Error(err))
	}

	persistence, err := github.New(&github.Config{
		Token:      cfg.GitHub.Token,
		Repository: cfg.GitHub.Repository,
		Path:       cfg.GitHub.Path,
		Branch:     cfg.GitHub.Branch,
		HTTPClient: &http.Client{Timeout: cfg.GitHub.Timeout},
	})
	if err != nil {
		logger.Fatal("Failed to create GitHub client", zap.Error(err))
	}
	if cfg.GitHub.Token == "" {
		logger.Warn("GITHUB_TOKEN not set, save and load will report errors")
	}

	dndClient, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{Timeout: cfg.DND5E.Timeout},
	})
	if err != nil {
		logger.Fatal("Failed to create D&D 5e client", zap.Error(err))
	}

	providerConfig := &services.ProviderConfig{
		SessionID:      cfg.Session.ID,
		Narrator:       narrator,
		Persistence:    persistence,
		DNDClient:      dndClient,
		Logger:         logger,
		GatewayTimeout: max(cfg.GitHub.Timeout, cfg.Assistant.Timeout),
	}

	redisClient := connectRedis(ctx, cfg.Redis.URL, logger)
	if redisClient != nil {
		providerConfig.SessionRepository = sessions.NewRedis(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("Error closing Redis connection", zap.Error(err))
			}
		}()
	}

	serviceProvider := services.NewProvider(providerConfig)

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
		OwnerID:         cfg.Discord.OwnerID,
		Logger:          logger,
	})

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Fatal("Failed to create Discord session", zap.Error(err))
	}
	dg.AddHandler(discord.RecoverMiddleware(logger, "interaction", handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		logger.Error("Failed to open Discord connection", zap.Error(err))
		return
	}
	defer func() {
		if err := dg.Close(); err != nil {
			logger.Warn("Failed to close Discord connection", zap.Error(err))
		}
	}()

	// Empty guild ID registers global commands
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		logger.Error("Failed to register commands", zap.Error(err))
		return
	}

	fmt.Println("Tracker is now running. Press CTRL-C to exit.")
	<-ctx.Done()
	fmt.Println("Shutting down...")
}

// connectRedis returns nil when the URL is empty or Redis is unreachable, which means in-memory storage
func connectRedis(ctx context.Context, url string, logger *zap.Logger) *redis.Client {
	if url == "" {
		logger.Info("No REDIS_URL found, using in-memory storage")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("Failed to parse Redis URL, falling back to in-memory storage", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Failed to connect to Redis, falling back to in-memory storage", zap.Error(err))
		_ = client.Close()
		return nil
	}

	logger.Info("Using Redis for persistence", zap.String("addr", opts.Addr))
	return client
}
