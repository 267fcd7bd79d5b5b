package discord

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/aegis-tracker/internal/clients/dnd5e"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/narrative"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
)

const (
	sheetColor = 0x2c3e50
	logColor   = 0x7f8c8d
	spellColor = 0x8e44ad

	// logPageSize is how many narrative entries the log embed shows
	logPageSize = 10
	// Discord caps message content at 2000 characters and embed descriptions at 4096
	maxContentLength     = 2000
	maxDescriptionLength = 4096
	maxButtonsPerRow     = 5
	maxActionRows        = 5
)

// BuildSheetEmbed renders the character sheet
func BuildSheetEmbed(s *sheet.CharacterSheet) *discordgo.MessageEmbed {
	hp := s.Combat.HP
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏹 %s", s.Identity.Name),
		Description: fmt.Sprintf("Level %d %s", s.Identity.Level, s.Identity.Class),
		Color:       sheetColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "❤️ Hit Points",
				Value:  fmt.Sprintf("%d / %d\nHit Dice: %d / %d", hp.Current, hp.Max, hp.HitDiceCurrent, hp.HitDiceTotal),
				Inline: true,
			},
			{
				Name:   "🛡️ Defense",
				Value:  fmt.Sprintf("AC %d\nInitiative %+d\nSpeed %d ft", s.Combat.ArmorClass, s.Combat.Initiative, s.Combat.Speed),
				Inline: true,
			},
			{
				Name:   "🌀 Conditions",
				Value:  orNone(strings.Join(s.Combat.Conditions, ", ")),
				Inline: true,
			},
		},
	}

	var attacks []string
	for _, attack := range s.Attacks {
		attacks = append(attacks, fmt.Sprintf("**%s** %+d to hit, %s %s (%s)",
			attack.Name, attack.Bonus, attack.Damage, attack.DamageType, attack.Mastery))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "⚔️ Attacks",
		Value: orNone(strings.Join(attacks, "\n")),
	})

	var resources []string
	for _, level := range s.Resources.SlotLevels() {
		pool := s.Resources.SpellSlots[level]
		resources = append(resources, fmt.Sprintf("Level %d slots: %d / %d", level, pool.Available(), pool.Total))
	}
	for _, name := range s.Resources.AbilityNames() {
		counter := s.Resources.Abilities[name]
		resources = append(resources, fmt.Sprintf("%s: %d / %d", sheet.DisplayName(name), counter.Current, counter.Total))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "✨ Resources",
		Value:  orNone(strings.Join(resources, "\n")),
		Inline: true,
	})

	var spells []string
	for _, level := range s.SpellLevels() {
		names := make([]string, 0, len(s.SpellsKnown[level]))
		for _, spell := range s.SpellsKnown[level] {
			name := spell.Name
			if spell.Concentration {
				name += " (C)"
			}
			names = append(names, name)
		}
		spells = append(spells, fmt.Sprintf("**%s:** %s", spellLevelLabel(level), strings.Join(names, ", ")))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "📖 Spells",
		Value:  orNone(strings.Join(spells, "\n")),
		Inline: true,
	})

	var items []string
	for _, name := range sortedItems(s.Inventory) {
		items = append(items, fmt.Sprintf("%s: %d", sheet.DisplayName(name), s.Inventory[name]))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "🎒 Inventory",
		Value: orNone(strings.Join(items, "\n")),
	})

	return embed
}

// BuildSheetComponents renders the action buttons under the sheet
func BuildSheetComponents(s *sheet.CharacterSheet) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent

	var attacks []discordgo.MessageComponent
	for _, attack := range s.Attacks {
		if len(attacks) == maxButtonsPerRow {
			break
		}
		attacks = append(attacks, discordgo.Button{
			Label:    attack.Name,
			Style:    discordgo.DangerButton,
			CustomID: buildCustomID(actionAttack, attack.Name),
			Emoji:    &discordgo.ComponentEmoji{Name: "⚔️"},
		})
	}
	if len(attacks) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: attacks})
	}

	rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Spend Hit Die",
			Style:    discordgo.SuccessButton,
			CustomID: buildCustomID(actionHitDie),
			Disabled: s.Combat.HP.HitDiceCurrent <= 0,
			Emoji:    &discordgo.ComponentEmoji{Name: "🩹"},
		},
		discordgo.Button{
			Label:    "Short Rest",
			Style:    discordgo.SecondaryButton,
			CustomID: buildCustomID(actionRest, "short"),
			Emoji:    &discordgo.ComponentEmoji{Name: "⏳"},
		},
		discordgo.Button{
			Label:    "Long Rest",
			Style:    discordgo.PrimaryButton,
			CustomID: buildCustomID(actionRest, "long"),
			Emoji:    &discordgo.ComponentEmoji{Name: "💤"},
		},
	}})

	// Discord allows five rows. The condition menu and the arrow row keep their
	// places; resource buttons get what is left, dropping Recover buttons first.
	_, hasArrows := s.Inventory[sheet.ItemArrows]
	reserved := 1
	if hasArrows {
		reserved++
	}
	budget := max(0, maxActionRows-len(rows)-reserved) * maxButtonsPerRow

	var resources, spends []discordgo.MessageComponent
	for _, name := range s.Resources.AbilityNames() {
		counter := s.Resources.Abilities[name]
		spend := discordgo.Button{
			Label:    fmt.Sprintf("%s (%d/%d)", sheet.DisplayName(name), counter.Current, counter.Total),
			Style:    discordgo.PrimaryButton,
			CustomID: buildCustomID(actionSpend, name),
			Disabled: counter.Current <= 0,
		}
		resources = append(resources, spend)
		spends = append(spends, spend)
	}
	for _, level := range s.Resources.SlotLevels() {
		pool := s.Resources.SpellSlots[level]
		slot := discordgo.Button{
			Label:    fmt.Sprintf("Slot L%d (%d/%d)", level, pool.Available(), pool.Total),
			Style:    discordgo.PrimaryButton,
			CustomID: buildCustomID(actionSlot, strconv.Itoa(level)),
			Disabled: pool.Available() <= 0,
		}
		spends = append(spends, slot)
		resources = append(resources, slot, discordgo.Button{
			Label:    fmt.Sprintf("Recover L%d", level),
			Style:    discordgo.SecondaryButton,
			CustomID: buildCustomID(actionRecover, strconv.Itoa(level)),
			Disabled: pool.Expended <= 0,
		})
	}
	if len(resources) > budget {
		resources = spends
	}
	if len(resources) > budget {
		resources = resources[:budget]
	}
	rows = append(rows, chunkButtons(resources)...)

	if hasArrows && len(rows) < maxActionRows-1 {
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Arrow -1",
				Style:    discordgo.SecondaryButton,
				CustomID: buildCustomID(actionItem, sheet.ItemArrows, "-1"),
				Disabled: s.Inventory[sheet.ItemArrows] <= 0,
				Emoji:    &discordgo.ComponentEmoji{Name: "🏹"},
			},
			discordgo.Button{
				Label:    "Arrow +1",
				Style:    discordgo.SecondaryButton,
				CustomID: buildCustomID(actionItem, sheet.ItemArrows, "1"),
				Emoji:    &discordgo.ComponentEmoji{Name: "🏹"},
			},
		}})
	}

	if len(rows) < maxActionRows {
		options := make([]discordgo.SelectMenuOption, 0, len(sheet.ConditionVocabulary))
		for _, tag := range sheet.ConditionVocabulary {
			options = append(options, discordgo.SelectMenuOption{
				Label:   tag,
				Value:   tag,
				Default: s.Combat.Conditions.Has(tag),
			})
		}
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    buildCustomID(actionCondition),
				Placeholder: "Toggle a condition...",
				Options:     options,
			},
		}})
	}

	return rows
}

// BuildLogEmbed renders the most recent narrative entries, oldest first
func BuildLogEmbed(entries []narrative.Entry) *discordgo.MessageEmbed {
	log := narrative.NewLog(entries...)

	var lines []string
	for _, entry := range log.Recent(logPageSize) {
		speaker := "🤖"
		if entry.Role == narrative.RoleUser {
			speaker = "🧑"
		}
		lines = append(lines, fmt.Sprintf("%s %s", speaker, entry.Text))
	}

	description := strings.Join(lines, "\n\n")
	// Drop the oldest lines until the page fits
	for len(description) > maxDescriptionLength && len(lines) > 1 {
		lines = lines[1:]
		description = strings.Join(lines, "\n\n")
	}

	return &discordgo.MessageEmbed{
		Title:       "📜 Adventure Log",
		Description: truncate(orNone(description), maxDescriptionLength),
		Color:       logColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d entries", log.Len()),
		},
	}
}

// BuildSpellEmbed renders reference data for one spell
func BuildSpellEmbed(info *dnd5e.SpellInfo) *discordgo.MessageEmbed {
	flags := []string{}
	if info.Concentration {
		flags = append(flags, "Concentration")
	}
	if info.Ritual {
		flags = append(flags, "Ritual")
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📖 %s", info.Name),
		Description: fmt.Sprintf("%s %s", spellLevelLabel(info.Level), info.School),
		Color:       spellColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Casting Time", Value: orNone(info.CastingTime), Inline: true},
			{Name: "Range", Value: orNone(info.Range), Inline: true},
			{Name: "Duration", Value: orNone(info.Duration), Inline: true},
		},
	}
	if len(flags) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Flags", Value: strings.Join(flags, ", "), Inline: true})
	}
	if info.DamageType != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Damage", Value: info.DamageType, Inline: true})
	}
	if len(info.Classes) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Classes", Value: strings.Join(info.Classes, ", ")})
	}

	return embed
}

func chunkButtons(buttons []discordgo.MessageComponent) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	for len(buttons) > 0 {
		n := min(len(buttons), maxButtonsPerRow)
		rows = append(rows, discordgo.ActionsRow{Components: buttons[:n]})
		buttons = buttons[n:]
	}
	return rows
}

func spellLevelLabel(level int) string {
	if level == 0 {
		return "Cantrip"
	}
	return fmt.Sprintf("Level %d", level)
}

func sortedItems(inventory map[string]int) []string {
	names := make([]string, 0, len(inventory))
	for name := range inventory {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func orNone(value string) string {
	if value == "" {
		return "None"
	}
	return value
}

// truncate cuts on a rune boundary and marks the cut
func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(value) <= limit || len(runes) <= limit {
		return value
	}
	return string(runes[:limit-1]) + "…"
}
