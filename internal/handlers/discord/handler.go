package discord

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
	"github.com/KirkDiggler/aegis-tracker/internal/handlers/discord/utils"
	"github.com/KirkDiggler/aegis-tracker/internal/logging"
	"github.com/KirkDiggler/aegis-tracker/internal/services"
	"github.com/KirkDiggler/aegis-tracker/internal/services/tracker"
)

const (
	commandName = "aegis"

	// interactionTimeout stays under the 15 minute interaction token lifetime
	interactionTimeout = 14 * time.Minute

	nothingChanged = "Nothing to change."
	notOwner       = "Only the character's owner can change the sheet."
)

// Handler handles all Discord interactions
type Handler struct {
	tracker tracker.Service
	ownerID string
	logger  *zap.Logger
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	// OwnerID restricts mutating actions to one Discord user when set
	OwnerID string
	Logger  *zap.Logger
}

// reply is what an interaction ends up showing
type reply struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Files      []*discordgo.File
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil || cfg.ServiceProvider.TrackerService == nil {
		panic("tracker service is required")
	}

	return &Handler{
		tracker: cfg.ServiceProvider.TrackerService,
		ownerID: cfg.OwnerID,
		logger:  logging.OrNop(cfg.Logger),
	}
}

// Commands returns the slash commands the handler serves
func Commands() []*discordgo.ApplicationCommand {
	resourceModes := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Spend", Value: actionSpend},
		{Name: "Restore", Value: actionRestore},
	}
	slotModes := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Spend", Value: actionSlot},
		{Name: "Recover", Value: actionRecover},
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        commandName,
			Description: "Aegis character tracker",
			Options: []*discordgo.ApplicationCommandOption{
				subCommand(actionSheet, "Show the character sheet"),
				subCommand(actionLog, "Show the latest adventure log entries"),
				subCommand(actionAttack, "Roll an attack",
					stringOption("weapon", "Weapon name", true)),
				subCommand(actionCast, "Cast a known spell",
					stringOption("spell", "Spell name", true)),
				subCommand(actionHitDie, "Spend one hit die to heal"),
				subCommand(actionRest, "Take a rest",
					withChoices(stringOption("kind", "Short or long rest", true),
						&discordgo.ApplicationCommandOptionChoice{Name: "Short", Value: string(tracker.RestShort)},
						&discordgo.ApplicationCommandOptionChoice{Name: "Long", Value: string(tracker.RestLong)},
					)),
				subCommand("resource", "Spend or restore a class ability",
					stringOption("name", "Ability, e.g. favored_enemy", true),
					withChoices(stringOption("mode", "Spend or restore", true), resourceModes...)),
				subCommand(actionSlot, "Spend or recover a spell slot",
					intOption("level", "Slot level", true),
					withChoices(stringOption("mode", "Spend or recover", true), slotModes...)),
				subCommand(actionCondition, "Toggle a condition",
					withChoices(stringOption("name", "Condition", true), conditionChoices()...)),
				subCommand(actionItem, "Change an inventory count",
					stringOption("name", "Item, e.g. arrows", true),
					intOption("delta", "Amount to add (negative to remove)", true)),
				subCommand(actionHP, "Apply damage or healing",
					intOption("delta", "Negative for damage, positive for healing", true)),
				subCommand(actionChat, "Ask the assistant",
					stringOption("message", "What you do or ask", true)),
				subCommand(actionSave, "Save the sheet to GitHub"),
				subCommand(actionLoad, "Load the sheet from GitHub"),
				subCommand(actionExport, "Download the sheet as JSON"),
				subCommand(actionSpellInfo, "Look up a spell",
					stringOption("name", "Spell name", true)),
			},
		},
	}
}

// RegisterCommands registers all slash commands
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		h.logger.Info("Registered command", zap.String("command", cmd.Name))
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ApplicationCommandData().Name != commandName {
		return
	}

	req, err := parseCommand(i)
	if err != nil {
		respondEphemeral(s, i, h.errorContent(err))
		return
	}
	if !h.allowed(i, req) {
		respondEphemeral(s, i, "❌ "+notOwner)
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		h.logger.Warn("Failed to defer response", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	out, err := h.execute(ctx, req)
	if err != nil {
		content := h.errorContent(err)
		out = &reply{Content: content}
	}
	h.edit(s, i, out)
}

func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	req, ok := parseCustomID(data.CustomID, data.Values)
	if !ok {
		return
	}
	if !h.allowed(i, req) {
		respondEphemeral(s, i, "❌ "+notOwner)
		return
	}

	// Buttons update the panel they sit on
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		h.logger.Warn("Failed to defer response", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	out, err := h.execute(ctx, req)
	if err != nil {
		if _, followErr := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: h.errorContent(err),
			Flags:   discordgo.MessageFlagsEphemeral,
		}); followErr != nil {
			h.logger.Warn("Failed to send followup", zap.Error(followErr))
		}
		return
	}
	h.edit(s, i, out)
}

// execute runs one request against the tracker and renders the result
func (h *Handler) execute(ctx context.Context, req request) (*reply, error) {
	switch req.Action {
	case actionSheet:
		snap, err := h.tracker.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return &reply{
			Embeds:     []*discordgo.MessageEmbed{BuildSheetEmbed(snap.Sheet)},
			Components: BuildSheetComponents(snap.Sheet),
		}, nil
	case actionLog:
		snap, err := h.tracker.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return &reply{Embeds: []*discordgo.MessageEmbed{BuildLogEmbed(snap.Entries)}}, nil
	case actionAttack:
		return actionReply(h.tracker.Attack(ctx, req.Arg))
	case actionCast:
		return actionReply(h.tracker.CastSpell(ctx, req.Arg))
	case actionHitDie:
		return actionReply(h.tracker.SpendHitDie(ctx))
	case actionRest:
		return actionReply(h.tracker.Rest(ctx, tracker.RestKind(req.Arg)))
	case actionSpend:
		return actionReply(h.tracker.SpendResource(ctx, req.Arg))
	case actionRestore:
		return actionReply(h.tracker.RestoreResource(ctx, req.Arg))
	case actionSlot, actionRecover:
		level, err := strconv.Atoi(req.Arg)
		if err != nil {
			return nil, apperr.InvalidArgumentf("invalid slot level %q", req.Arg)
		}
		if req.Action == actionSlot {
			return actionReply(h.tracker.SpendSpellSlot(ctx, level))
		}
		return actionReply(h.tracker.RestoreSpellSlot(ctx, level))
	case actionCondition:
		return actionReply(h.tracker.ToggleCondition(ctx, req.Arg))
	case actionItem:
		return actionReply(h.tracker.AdjustItem(ctx, req.Arg, req.Amount))
	case actionHP:
		return actionReply(h.tracker.AdjustHitPoints(ctx, req.Amount))
	case actionChat:
		result, err := h.tracker.Chat(ctx, req.Arg)
		if err != nil {
			return nil, err
		}
		return &reply{Content: truncate(fmt.Sprintf("> %s\n\n%s", req.Arg, result.Reply), maxContentLength)}, nil
	case actionSave:
		return actionReply(h.tracker.SaveRemote(ctx))
	case actionLoad:
		return actionReply(h.tracker.LoadRemote(ctx))
	case actionExport:
		result, err := h.tracker.Export(ctx)
		if err != nil {
			return nil, err
		}
		return &reply{
			Content: "📦 Sheet backup attached.",
			Files: []*discordgo.File{{
				Name:        result.FileName,
				ContentType: "application/json",
				Reader:      bytes.NewReader(result.Data),
			}},
		}, nil
	case actionSpellInfo:
		info, err := h.tracker.SpellInfo(ctx, req.Arg)
		if err != nil {
			return nil, err
		}
		return &reply{Embeds: []*discordgo.MessageEmbed{BuildSpellEmbed(info)}}, nil
	default:
		return nil, apperr.InvalidArgumentf("unknown action %q", req.Action)
	}
}

// actionReply shows the outcome message above the refreshed sheet
func actionReply(result *tracker.ActionResult, err error) (*reply, error) {
	if err != nil {
		return nil, err
	}

	content := result.Message
	if content == "" {
		content = nothingChanged
	}

	return &reply{
		Content:    content,
		Embeds:     []*discordgo.MessageEmbed{BuildSheetEmbed(result.Sheet)},
		Components: BuildSheetComponents(result.Sheet),
	}, nil
}

// parseCommand turns /aegis <subcommand> options into a request
func parseCommand(i *discordgo.InteractionCreate) (request, error) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return request{}, apperr.InvalidArgument("missing subcommand")
	}

	sub := options[0].Name
	switch sub {
	case actionSheet, actionLog, actionHitDie, actionSave, actionLoad, actionExport:
		return request{Action: sub}, nil
	case actionAttack:
		return request{Action: sub, Arg: utils.GetStringOption(i, "weapon")}, nil
	case actionCast:
		return request{Action: sub, Arg: utils.GetStringOption(i, "spell")}, nil
	case actionRest:
		return request{Action: sub, Arg: utils.GetStringOption(i, "kind")}, nil
	case "resource":
		return request{Action: utils.GetStringOption(i, "mode"), Arg: utils.GetStringOption(i, "name")}, nil
	case actionSlot:
		return request{
			Action: utils.GetStringOption(i, "mode"),
			Arg:    strconv.FormatInt(utils.GetIntOption(i, "level"), 10),
		}, nil
	case actionCondition, actionSpellInfo:
		return request{Action: sub, Arg: utils.GetStringOption(i, "name")}, nil
	case actionItem:
		return request{
			Action: sub,
			Arg:    utils.GetStringOption(i, "name"),
			Amount: int(utils.GetIntOption(i, "delta")),
		}, nil
	case actionHP:
		return request{Action: sub, Amount: int(utils.GetIntOption(i, "delta"))}, nil
	case actionChat:
		return request{Action: sub, Arg: utils.GetStringOption(i, "message")}, nil
	default:
		return request{}, apperr.InvalidArgumentf("unknown subcommand %q", sub)
	}
}

// allowed enforces the owner restriction on anything that changes the sheet
func (h *Handler) allowed(i *discordgo.InteractionCreate, req request) bool {
	if h.ownerID == "" || req.readOnly() {
		return true
	}
	return interactionUserID(i) == h.ownerID
}

// errorContent shows refusals and gateway trouble as-is and hides internal faults
func (h *Handler) errorContent(err error) string {
	switch {
	case apperr.IsUserFacing(err):
		return "❌ " + err.Error()
	case apperr.IsUnavailable(err), apperr.IsNotFound(err), apperr.IsDecode(err):
		h.logger.Warn("Gateway error", zap.Error(err))
		return "⚠️ " + err.Error()
	default:
		h.logger.Error("Interaction failed", zap.Error(err))
		return "❌ Something went wrong. Check the bot logs."
	}
}

func (h *Handler) edit(s *discordgo.Session, i *discordgo.InteractionCreate, out *reply) {
	edit := &discordgo.WebhookEdit{
		Content:    &out.Content,
		Embeds:     &out.Embeds,
		Components: &out.Components,
		Files:      out.Files,
	}
	if out.Embeds == nil {
		edit.Embeds = &[]*discordgo.MessageEmbed{}
	}
	if out.Components == nil {
		edit.Components = &[]discordgo.MessageComponent{}
	}

	if _, err := s.InteractionResponseEdit(i.Interaction, edit); err != nil {
		h.logger.Warn("Failed to edit interaction response", zap.Error(err))
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func subCommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Name:        name,
		Description: description,
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Options:     options,
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func intOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func withChoices(option *discordgo.ApplicationCommandOption, choices ...*discordgo.ApplicationCommandOptionChoice) *discordgo.ApplicationCommandOption {
	option.Choices = choices
	return option
}

func conditionChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(sheet.ConditionVocabulary))
	for _, tag := range sheet.ConditionVocabulary {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: tag, Value: tag})
	}
	return choices
}
