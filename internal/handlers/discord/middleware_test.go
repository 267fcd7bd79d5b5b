package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeResponder struct {
	respondErr error
	editErr    error
	followErr  error

	responded string
	edited    string
	followed  string
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	if f.respondErr != nil {
		return f.respondErr
	}
	f.responded = resp.Data.Content
	return nil
}

func (f *fakeResponder) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.editErr != nil {
		return nil, f.editErr
	}
	f.edited = *edit.Content
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, params *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.followErr != nil {
		return nil, f.followErr
	}
	f.followed = params.Content
	return &discordgo.Message{}, nil
}

func TestRespondWithError_FallsThrough(t *testing.T) {
	acknowledged := errors.New("already acknowledged")
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}

	tests := []struct {
		name      string
		responder *fakeResponder
		check     func(t *testing.T, f *fakeResponder)
	}{
		{
			name:      "fresh interaction",
			responder: &fakeResponder{},
			check: func(t *testing.T, f *fakeResponder) {
				assert.Equal(t, "❌ boom", f.responded)
				assert.Empty(t, f.edited)
			},
		},
		{
			name:      "deferred interaction",
			responder: &fakeResponder{respondErr: acknowledged},
			check: func(t *testing.T, f *fakeResponder) {
				assert.Equal(t, "❌ boom", f.edited)
				assert.Empty(t, f.followed)
			},
		},
		{
			name:      "followup as last resort",
			responder: &fakeResponder{respondErr: acknowledged, editErr: acknowledged},
			check: func(t *testing.T, f *fakeResponder) {
				assert.Equal(t, "❌ boom", f.followed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			respondWithError(zap.NewNop(), tt.responder, i, "boom")
			tt.check(t, tt.responder)
		})
	}
}

func TestRecoverMiddleware_SwallowsPanic(t *testing.T) {
	called := false
	wrapped := RecoverMiddleware(nil, "test", func(*discordgo.Session, *discordgo.InteractionCreate) {
		called = true
	})

	assert.NotPanics(t, func() { wrapped(nil, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}) })
	assert.True(t, called)
}
