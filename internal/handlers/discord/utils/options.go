// Package utils reads slash command options without caring how deep they are nested
package utils

import "github.com/bwmarrin/discordgo"

// GetCommandOption finds an option by name anywhere under the invoked subcommand
func GetCommandOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}
	return findOption(i.ApplicationCommandData().Options, name)
}

func findOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Name == name && !isGroup(opt) {
			return opt
		}
	}
	for _, opt := range options {
		if isGroup(opt) {
			if found := findOption(opt.Options, name); found != nil {
				return found
			}
		}
	}
	return nil
}

func isGroup(opt *discordgo.ApplicationCommandInteractionDataOption) bool {
	return opt.Type == discordgo.ApplicationCommandOptionSubCommand ||
		opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup
}

// GetStringOption returns a string option, or "" when absent
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

// GetIntOption returns an integer option, or 0 when absent
func GetIntOption(i *discordgo.InteractionCreate, name string) int64 {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0
	}
	return opt.IntValue()
}
