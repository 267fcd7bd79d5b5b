package discord

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/aegis-tracker/internal/clients/dnd5e"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
	"github.com/KirkDiggler/aegis-tracker/internal/services"
	"github.com/KirkDiggler/aegis-tracker/internal/services/tracker"
	mocktracker "github.com/KirkDiggler/aegis-tracker/internal/services/tracker/mock"
	"github.com/KirkDiggler/aegis-tracker/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	ctx     context.Context
	tracker *mocktracker.MockService
	handler *Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.tracker = mocktracker.NewMockService(s.ctrl)
	s.handler = NewHandler(&HandlerConfig{
		ServiceProvider: &services.Provider{TrackerService: s.tracker},
		OwnerID:         "owner-1",
	})
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) actionResult(message string) *tracker.ActionResult {
	return &tracker.ActionResult{
		Snapshot: tracker.Snapshot{Sheet: testutils.CreateTestSheet()},
		Changed:  message != "",
		Message:  message,
	}
}

func (s *HandlerTestSuite) TestExecute_AttackShowsMessageAndSheet() {
	s.tracker.EXPECT().Attack(s.ctx, "Longbow").Return(s.actionResult("⚔️ **Longbow:** Rolled **14**"), nil)

	out, err := s.handler.execute(s.ctx, request{Action: actionAttack, Arg: "Longbow"})
	s.Require().NoError(err)

	s.Equal("⚔️ **Longbow:** Rolled **14**", out.Content)
	s.Require().Len(out.Embeds, 1)
	s.Equal("🏹 Aegis", out.Embeds[0].Title)
	s.NotEmpty(out.Components)
}

func (s *HandlerTestSuite) TestExecute_NoOpSaysSo() {
	s.tracker.EXPECT().RestoreSpellSlot(s.ctx, 1).Return(s.actionResult(""), nil)

	out, err := s.handler.execute(s.ctx, request{Action: actionRecover, Arg: "1"})
	s.Require().NoError(err)
	s.Equal(nothingChanged, out.Content)
}

func (s *HandlerTestSuite) TestExecute_Routing() {
	s.tracker.EXPECT().SpendSpellSlot(s.ctx, 1).Return(s.actionResult("slot"), nil)
	s.tracker.EXPECT().SpendResource(s.ctx, "favored_enemy").Return(s.actionResult("spend"), nil)
	s.tracker.EXPECT().RestoreResource(s.ctx, "favored_enemy").Return(s.actionResult("restore"), nil)
	s.tracker.EXPECT().Rest(s.ctx, tracker.RestLong).Return(s.actionResult("rest"), nil)
	s.tracker.EXPECT().SpendHitDie(s.ctx).Return(s.actionResult("hitdie"), nil)
	s.tracker.EXPECT().CastSpell(s.ctx, "Cure Wounds").Return(s.actionResult("cast"), nil)
	s.tracker.EXPECT().ToggleCondition(s.ctx, "Prone").Return(s.actionResult("condition"), nil)
	s.tracker.EXPECT().AdjustItem(s.ctx, "arrows", -1).Return(s.actionResult("item"), nil)
	s.tracker.EXPECT().AdjustHitPoints(s.ctx, 5).Return(s.actionResult("hp"), nil)
	s.tracker.EXPECT().SaveRemote(s.ctx).Return(s.actionResult("save"), nil)
	s.tracker.EXPECT().LoadRemote(s.ctx).Return(s.actionResult("load"), nil)

	requests := map[string]request{
		"slot":      {Action: actionSlot, Arg: "1"},
		"spend":     {Action: actionSpend, Arg: "favored_enemy"},
		"restore":   {Action: actionRestore, Arg: "favored_enemy"},
		"rest":      {Action: actionRest, Arg: "long"},
		"hitdie":    {Action: actionHitDie},
		"cast":      {Action: actionCast, Arg: "Cure Wounds"},
		"condition": {Action: actionCondition, Arg: "Prone"},
		"item":      {Action: actionItem, Arg: "arrows", Amount: -1},
		"hp":        {Action: actionHP, Amount: 5},
		"save":      {Action: actionSave},
		"load":      {Action: actionLoad},
	}
	for want, req := range requests {
		out, err := s.handler.execute(s.ctx, req)
		s.Require().NoError(err, want)
		s.Equal(want, out.Content)
	}
}

func (s *HandlerTestSuite) TestExecute_BadSlotLevel() {
	_, err := s.handler.execute(s.ctx, request{Action: actionSlot, Arg: "one"})
	s.True(apperr.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestExecute_UnknownAction() {
	_, err := s.handler.execute(s.ctx, request{Action: "dance"})
	s.True(apperr.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestExecute_RefusalPassesThrough() {
	s.tracker.EXPECT().SpendHitDie(s.ctx).Return(nil, apperr.Refused("no hit dice remaining"))

	_, err := s.handler.execute(s.ctx, request{Action: actionHitDie})
	s.True(apperr.IsRefused(err))
	s.Equal("❌ no hit dice remaining", s.handler.errorContent(err))
}

func (s *HandlerTestSuite) TestExecute_Chat() {
	s.tracker.EXPECT().Chat(s.ctx, "Can I climb?").Return(&tracker.ChatResult{Reply: "Roll Athletics."}, nil)

	out, err := s.handler.execute(s.ctx, request{Action: actionChat, Arg: "Can I climb?"})
	s.Require().NoError(err)
	s.Equal("> Can I climb?\n\nRoll Athletics.", out.Content)
}

func (s *HandlerTestSuite) TestExecute_Export() {
	s.tracker.EXPECT().Export(s.ctx).Return(&tracker.ExportResult{FileName: "aegis_backup.json", Data: []byte(`{"x":1}`)}, nil)

	out, err := s.handler.execute(s.ctx, request{Action: actionExport})
	s.Require().NoError(err)
	s.Require().Len(out.Files, 1)
	s.Equal("aegis_backup.json", out.Files[0].Name)
	data, err := io.ReadAll(out.Files[0].Reader)
	s.Require().NoError(err)
	s.Equal(`{"x":1}`, string(data))
}

func (s *HandlerTestSuite) TestExecute_SheetAndLog() {
	snap := &tracker.Snapshot{
		Sheet:   testutils.CreateTestSheet(),
		Entries: testutils.CreateTestEntries(3),
	}
	s.tracker.EXPECT().Snapshot(s.ctx).Return(snap, nil).Times(2)

	out, err := s.handler.execute(s.ctx, request{Action: actionSheet})
	s.Require().NoError(err)
	s.Equal("🏹 Aegis", out.Embeds[0].Title)

	out, err = s.handler.execute(s.ctx, request{Action: actionLog})
	s.Require().NoError(err)
	s.Equal("📜 Adventure Log", out.Embeds[0].Title)
}

func (s *HandlerTestSuite) TestExecute_SpellInfo() {
	s.tracker.EXPECT().SpellInfo(s.ctx, "Cure Wounds").Return(&dnd5e.SpellInfo{Name: "Cure Wounds", Level: 1}, nil)

	out, err := s.handler.execute(s.ctx, request{Action: actionSpellInfo, Arg: "Cure Wounds"})
	s.Require().NoError(err)
	s.Equal("📖 Cure Wounds", out.Embeds[0].Title)
}

func (s *HandlerTestSuite) TestAllowed() {
	owner := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "owner-1"}},
	}}
	stranger := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "someone"},
	}}

	s.True(s.handler.allowed(owner, request{Action: actionAttack}))
	s.False(s.handler.allowed(stranger, request{Action: actionAttack}))
	s.True(s.handler.allowed(stranger, request{Action: actionSheet}))
}

func (s *HandlerTestSuite) TestErrorContent() {
	s.Equal("⚠️ save failed: github down", s.handler.errorContent(apperr.Wrap(apperr.Unavailablef("github down"), "save failed")))
	s.Equal("❌ Something went wrong. Check the bot logs.", s.handler.errorContent(errors.New("boom")))
}

func commandInteraction(sub string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: commandName,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{{
					Name:    sub,
					Type:    discordgo.ApplicationCommandOptionSubCommand,
					Options: options,
				}},
			},
		},
	}
}

func stringValue(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func intValue(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name        string
		interaction *discordgo.InteractionCreate
		want        request
	}{
		{name: "sheet", interaction: commandInteraction("sheet"), want: request{Action: actionSheet}},
		{name: "attack", interaction: commandInteraction("attack", stringValue("weapon", "Scimitar")), want: request{Action: actionAttack, Arg: "Scimitar"}},
		{name: "cast", interaction: commandInteraction("cast", stringValue("spell", "Hunter's Mark")), want: request{Action: actionCast, Arg: "Hunter's Mark"}},
		{name: "rest", interaction: commandInteraction("rest", stringValue("kind", "short")), want: request{Action: actionRest, Arg: "short"}},
		{
			name:        "resource restore",
			interaction: commandInteraction("resource", stringValue("name", "dreadful_strike"), stringValue("mode", actionRestore)),
			want:        request{Action: actionRestore, Arg: "dreadful_strike"},
		},
		{
			name:        "slot recover",
			interaction: commandInteraction("slot", intValue("level", 1), stringValue("mode", actionRecover)),
			want:        request{Action: actionRecover, Arg: "1"},
		},
		{
			name:        "item",
			interaction: commandInteraction("item", stringValue("name", "gold"), intValue("delta", -20)),
			want:        request{Action: actionItem, Arg: "gold", Amount: -20},
		},
		{name: "hp", interaction: commandInteraction("hp", intValue("delta", -7)), want: request{Action: actionHP, Amount: -7}},
		{name: "chat", interaction: commandInteraction("chat", stringValue("message", "hello")), want: request{Action: actionChat, Arg: "hello"}},
		{name: "spell info", interaction: commandInteraction("spell-info", stringValue("name", "Cure Wounds")), want: request{Action: actionSpellInfo, Arg: "Cure Wounds"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCommand(tt.interaction)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Unknown(t *testing.T) {
	_, err := parseCommand(commandInteraction("dance"))
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestCommands_SubcommandsHaveParsers(t *testing.T) {
	commands := Commands()
	require.Len(t, commands, 1)
	assert.Equal(t, commandName, commands[0].Name)

	for _, sub := range commands[0].Options {
		_, err := parseCommand(commandInteraction(sub.Name))
		assert.NoError(t, err, sub.Name)
	}
}
