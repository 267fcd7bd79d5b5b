package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/aegis-tracker/internal/clients/assistant"
	"github.com/KirkDiggler/aegis-tracker/internal/clients/dnd5e"
	"github.com/KirkDiggler/aegis-tracker/internal/clients/github"
	"github.com/KirkDiggler/aegis-tracker/internal/repositories/sessions"
	"github.com/KirkDiggler/aegis-tracker/internal/rules"
	"github.com/KirkDiggler/aegis-tracker/internal/services/tracker"
)

// Provider holds all service instances
type Provider struct {
	TrackerService tracker.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	SessionID         string
	SessionRepository sessions.Repository
	Engine            *rules.Engine
	Narrator          assistant.Narrator
	Persistence       github.Client
	DNDClient         dnd5e.Client
	Logger            *zap.Logger
	GatewayTimeout    time.Duration
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	sessionRepo := cfg.SessionRepository
	if sessionRepo == nil {
		sessionRepo = sessions.NewInMemoryRepository()
	}

	trackerService := tracker.NewService(&tracker.ServiceConfig{
		SessionID:      cfg.SessionID,
		Repository:     sessionRepo,
		Engine:         cfg.Engine,
		Narrator:       cfg.Narrator,
		Persistence:    cfg.Persistence,
		SpellLookup:    cfg.DNDClient,
		Logger:         cfg.Logger,
		GatewayTimeout: cfg.GatewayTimeout,
	})

	return &Provider{
		TrackerService: trackerService,
	}
}
