package assistant

import (
	"context"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// OpenAIConfig configures a narrator for any OpenAI-compatible endpoint
type OpenAIConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// OpenAI narrates through the chat completions API
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI-compatible narrator
func NewOpenAI(cfg *OpenAIConfig) *OpenAI {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientConfig.HTTPClient = cfg.HTTPClient
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Narrate sends the prompt as a single user message
func (o *OpenAI) Narrate(ctx context.Context, s *sheet.CharacterSheet, utterance string) (string, error) {
	prompt, err := BuildPrompt(s, utterance)
	if err != nil {
		return "", err
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", apperr.WrapWithCode(err, apperr.CodeUnavailable, "OpenAI request failed").
			WithMeta("model", o.model)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", emptyReply(ProviderOpenAI)
	}

	return resp.Choices[0].Message.Content, nil
}
