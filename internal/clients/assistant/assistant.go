// Package assistant forwards free text, together with the current sheet, to a language model
package assistant

//go:generate mockgen -destination=mock/mock_narrator.go -package=mockassistant . Narrator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// Providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

const (
	DefaultGeminiModel = "gemini-1.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultTimeout     = 60 * time.Second
)

// Narrator answers a user utterance given the current sheet. The reply is returned verbatim.
type Narrator interface {
	Narrate(ctx context.Context, s *sheet.CharacterSheet, utterance string) (string, error)
}

// Config selects and configures a provider
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// New creates the narrator for cfg.Provider. The API key is required.
func New(ctx context.Context, cfg *Config) (Narrator, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, apperr.InvalidArgument("assistant API key is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	switch strings.ToLower(cfg.Provider) {
	case "", ProviderGemini:
		return NewGemini(ctx, &GeminiConfig{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
	case ProviderOpenAI:
		return NewOpenAI(&OpenAIConfig{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		}), nil
	default:
		return nil, apperr.InvalidArgumentf("unknown assistant provider %q", cfg.Provider)
	}
}

const promptTemplate = `Role: You are a D&D 5e (2024 Rules) Assistant for %s.
Current State: %s
User Input: "%s"

Instructions:
1. If the user describes an action (healing, item use), describe the mechanical result briefly.
2. If they ask a rule question, answer using 2024 PHB rules.
3. Keep it immersive but concise.`

// BuildPrompt renders the request text: role preamble, the sheet as JSON, the raw
// utterance and the fixed instructions
func BuildPrompt(s *sheet.CharacterSheet, utterance string) (string, error) {
	if s == nil {
		return "", apperr.InvalidArgument("sheet cannot be nil")
	}

	state, err := json.Marshal(s)
	if err != nil {
		return "", apperr.WrapWithCode(err, apperr.CodeInternal, "failed to encode sheet for prompt")
	}

	return fmt.Sprintf(promptTemplate, s.Identity.Name, state, utterance), nil
}

func emptyReply(provider string) error {
	return apperr.Unavailablef("assistant returned an empty reply").
		WithMeta("provider", provider)
}
