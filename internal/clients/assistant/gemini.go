package assistant

import (
	"context"
	"net/http"

	"google.golang.org/genai"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// GeminiConfig configures the Gemini narrator
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Gemini narrates with the Gemini API
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini narrator using an API key
func NewGemini(ctx context.Context, cfg *GeminiConfig) (*Gemini, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to create Gemini client")
	}

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

// Narrate sends the prompt as a single user turn
func (g *Gemini) Narrate(ctx context.Context, s *sheet.CharacterSheet, utterance string) (string, error) {
	prompt, err := BuildPrompt(s, utterance)
	if err != nil {
		return "", err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", apperr.WrapWithCode(err, apperr.CodeUnavailable, "Gemini request failed").
			WithMeta("model", g.model)
	}

	text := extractText(resp)
	if text == "" {
		return "", emptyReply(ProviderGemini)
	}

	return text, nil
}

// extractText joins the text parts of the first candidate
func extractText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, p := range res.Candidates[0].Content.Parts {
		if p != nil {
			text += p.Text
		}
	}
	return text
}
