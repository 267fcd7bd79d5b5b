package utils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func commandInteraction(options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    "aegis",
				Options: options,
			},
		},
	}
}

func TestOptions(t *testing.T) {
	i := commandInteraction(&discordgo.ApplicationCommandInteractionDataOption{
		Name: "item",
		Type: discordgo.ApplicationCommandOptionSubCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "arrows"},
			{Name: "delta", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(-3)},
		},
	})

	assert.Equal(t, "arrows", GetStringOption(i, "name"))
	assert.Equal(t, int64(-3), GetIntOption(i, "delta"))

	// The subcommand itself is not a value
	assert.Equal(t, "", GetStringOption(i, "item"))
	assert.Equal(t, "", GetStringOption(i, "missing"))
	assert.Equal(t, int64(0), GetIntOption(i, "name"))
}

func TestOptions_NonCommandInteraction(t *testing.T) {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{Type: discordgo.InteractionMessageComponent}}
	assert.Nil(t, GetCommandOption(i, "name"))
	assert.Nil(t, GetCommandOption(nil, "name"))
}
