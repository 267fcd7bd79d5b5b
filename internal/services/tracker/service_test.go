package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	mockassistant "github.com/KirkDiggler/aegis-tracker/internal/clients/assistant/mock"
	"github.com/KirkDiggler/aegis-tracker/internal/clients/dnd5e"
	mockdnd5e "github.com/KirkDiggler/aegis-tracker/internal/clients/dnd5e/mock"
	"github.com/KirkDiggler/aegis-tracker/internal/clients/github"
	mockgithub "github.com/KirkDiggler/aegis-tracker/internal/clients/github/mock"
	mockdice "github.com/KirkDiggler/aegis-tracker/internal/dice/mock"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/narrative"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
	"github.com/KirkDiggler/aegis-tracker/internal/repositories/sessions"
	"github.com/KirkDiggler/aegis-tracker/internal/rules"
	"github.com/KirkDiggler/aegis-tracker/internal/testutils"
	"github.com/KirkDiggler/aegis-tracker/internal/uuid"
)

const sessionID = "aegis"

type ServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	ctx         context.Context
	roller      *mockdice.ManualMockRoller
	repo        sessions.Repository
	persistence *mockgithub.MockClient
	narrator    *mockassistant.MockNarrator
	spells      *mockdnd5e.MockClient
	svc         Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.roller = mockdice.NewManualMockRoller()
	s.repo = sessions.NewInMemoryRepository()
	s.persistence = mockgithub.NewMockClient(s.ctrl)
	s.narrator = mockassistant.NewMockNarrator(s.ctrl)
	s.spells = mockdnd5e.NewMockClient(s.ctrl)

	s.svc = NewService(&ServiceConfig{
		SessionID:   sessionID,
		Repository:  s.repo,
		Engine:      rules.NewEngine(&rules.EngineConfig{Roller: s.roller}),
		Narrator:    s.narrator,
		Persistence: s.persistence,
		SpellLookup: s.spells,
		IDGenerator: uuid.NewSequenceGenerator("entry"),
		Clock:       func() time.Time { return testutils.FixedTime },
		Logger:      zaptest.NewLogger(s.T()),
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.Equal(0, s.roller.Remaining(), "queued rolls left unused")
	s.ctrl.Finish()
}

// seed stores a sheet so the first load does not reach the persistence gateway
func (s *ServiceTestSuite) seed(mutations ...func(*sheet.CharacterSheet)) {
	s.Require().NoError(s.repo.SaveSheet(s.ctx, sessionID, testutils.CreateTestSheet(mutations...)))
}

func (s *ServiceTestSuite) storedSheet() *sheet.CharacterSheet {
	stored, err := s.repo.GetSheet(s.ctx, sessionID)
	s.Require().NoError(err)
	return stored
}

func (s *ServiceTestSuite) storedEntries() []narrative.Entry {
	entries, err := s.repo.ListEntries(s.ctx, sessionID)
	s.Require().NoError(err)
	return entries
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestSnapshot_SeedsFromSavedSheet() {
	saved := testutils.CreateTestSheet(testutils.WithHitPoints(12))
	s.persistence.EXPECT().Load(gomock.Any()).Return(saved, nil)

	snap, err := s.svc.Snapshot(s.ctx)
	s.Require().NoError(err)

	s.Equal(12, snap.Sheet.Combat.HP.Current)
	s.Require().Len(snap.Entries, 1)
	s.Equal("entry-1", snap.Entries[0].ID)
	s.Equal(narrative.WelcomeText, snap.Entries[0].Text)
	s.Equal(testutils.FixedTime, snap.Entries[0].CreatedAt)
	s.Equal(12, s.storedSheet().Combat.HP.Current)
}

func (s *ServiceTestSuite) TestSnapshot_FallsBackToDefaultSheet() {
	s.persistence.EXPECT().Load(gomock.Any()).Return(nil, apperr.NotFoundf("no saved sheet"))

	snap, err := s.svc.Snapshot(s.ctx)
	s.Require().NoError(err)

	s.Equal(sheet.Default(), snap.Sheet)

	// Second read comes from the store and does not welcome again
	snap, err = s.svc.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Len(snap.Entries, 1)
}

func (s *ServiceTestSuite) TestAttack_PersistsAndNarrates() {
	s.seed()
	s.roller.SetRolls([]int{20, 5})

	result, err := s.svc.Attack(s.ctx, "Longbow")
	s.Require().NoError(err)

	s.True(result.Changed)
	s.Equal("⚔️ **Longbow:** Rolled **26** (Nat 20) for **7** damage. 💥 **CRIT!**", result.Message)
	s.Equal(66, result.Sheet.Inventory[sheet.ItemArrows])
	s.Equal(66, s.storedSheet().Inventory[sheet.ItemArrows])

	entries := s.storedEntries()
	s.Require().Len(entries, 2)
	s.Equal(narrative.RoleAssistant, entries[1].Role)
	s.Equal(result.Message, entries[1].Text)
	s.Equal(entries, result.Entries)
}

func (s *ServiceTestSuite) TestRefusedActionLeavesStateUntouched() {
	s.seed(testutils.WithHitDice(0), testutils.WithHitPoints(5))

	_, err := s.svc.SpendHitDie(s.ctx)
	s.True(apperr.IsRefused(err))

	s.Equal(testutils.CreateTestSheet(testutils.WithHitDice(0), testutils.WithHitPoints(5)), s.storedSheet())
	s.Len(s.storedEntries(), 1)
}

func (s *ServiceTestSuite) TestNoOpIsNotNarrated() {
	s.seed()

	result, err := s.svc.RestoreResource(s.ctx, sheet.AbilityFavoredEnemy)
	s.Require().NoError(err)

	s.False(result.Changed)
	s.Empty(result.Message)
	s.Len(s.storedEntries(), 1)
}

func (s *ServiceTestSuite) TestSpendHitDie_ThenLongRest() {
	s.seed(testutils.WithHitPoints(10))
	s.roller.SetRolls([]int{6})

	result, err := s.svc.SpendHitDie(s.ctx)
	s.Require().NoError(err)
	s.Equal(19, result.Sheet.Combat.HP.Current)
	s.Equal(1, result.Sheet.Combat.HP.HitDiceCurrent)

	result, err = s.svc.Rest(s.ctx, RestLong)
	s.Require().NoError(err)
	s.Equal(28, result.Sheet.Combat.HP.Current)
	s.Equal(2, result.Sheet.Combat.HP.HitDiceCurrent)
	s.Len(s.storedEntries(), 3)
}

func (s *ServiceTestSuite) TestRest_UnknownKind() {
	_, err := s.svc.Rest(s.ctx, RestKind("nap"))
	s.True(apperr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestCastSpell_UsesFreeCastFirst() {
	s.seed()

	result, err := s.svc.CastSpell(s.ctx, "Hunter's Mark")
	s.Require().NoError(err)

	stored := s.storedSheet()
	s.Equal(result.Sheet, stored)
	s.Equal(0, stored.Resources.SpellSlots[1].Expended)
	s.True(stored.Combat.Conditions.Has(sheet.ConditionHuntersMark))
}

func (s *ServiceTestSuite) TestConcurrentActionsAreSerialized() {
	s.seed()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.AdjustItem(s.ctx, sheet.ItemArrows, -1)
			s.NoError(err)
		}()
	}
	wg.Wait()

	s.Equal(47, s.storedSheet().Inventory[sheet.ItemArrows])
	s.Len(s.storedEntries(), 21)
}

func (s *ServiceTestSuite) TestChat_AppendsUtteranceAndReply() {
	s.seed()
	s.narrator.EXPECT().
		Narrate(gomock.Any(), gomock.Any(), "Can I jump the chasm?").
		Return("Roll Athletics, Aegis.", nil)

	result, err := s.svc.Chat(s.ctx, "Can I jump the chasm?")
	s.Require().NoError(err)

	s.Equal("Roll Athletics, Aegis.", result.Reply)
	entries := s.storedEntries()
	s.Require().Len(entries, 3)
	s.Equal(narrative.RoleUser, entries[1].Role)
	s.Equal(narrative.RoleAssistant, entries[2].Role)
	s.Equal(entries, result.Entries)
}

func (s *ServiceTestSuite) TestChat_FailureKeepsUtterance() {
	s.seed()
	s.narrator.EXPECT().
		Narrate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", apperr.Unavailablef("assistant returned no text"))

	_, err := s.svc.Chat(s.ctx, "hello?")
	s.True(apperr.IsUnavailable(err))

	entries := s.storedEntries()
	s.Require().Len(entries, 2)
	s.Equal("hello?", entries[1].Text)
}

func (s *ServiceTestSuite) TestChat_RejectsEmpty() {
	_, err := s.svc.Chat(s.ctx, "")
	s.True(apperr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestSaveRemote() {
	s.seed(testutils.WithHitPoints(3))
	s.persistence.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved *sheet.CharacterSheet) error {
			s.Equal(3, saved.Combat.HP.Current)
			return nil
		})

	result, err := s.svc.SaveRemote(s.ctx)
	s.Require().NoError(err)
	s.Equal(savedMessage, result.Message)
	s.Len(s.storedEntries(), 1)
}

func (s *ServiceTestSuite) TestSaveRemote_Failure() {
	s.seed()
	s.persistence.EXPECT().Save(gomock.Any(), gomock.Any()).Return(apperr.Unavailablef("github down"))

	_, err := s.svc.SaveRemote(s.ctx)
	s.True(apperr.IsUnavailable(err))
}

func (s *ServiceTestSuite) TestLoadRemote_ReplacesSheet() {
	s.seed()
	s.persistence.EXPECT().Load(gomock.Any()).Return(testutils.CreateTestSheet(testutils.WithHitPoints(4)), nil)

	result, err := s.svc.LoadRemote(s.ctx)
	s.Require().NoError(err)

	s.True(result.Changed)
	s.Equal(loadedMessage, result.Message)
	s.Equal(4, s.storedSheet().Combat.HP.Current)
}

func (s *ServiceTestSuite) TestLoadRemote_FailureKeepsSheet() {
	testCases := []struct {
		name    string
		err     error
		message string
	}{
		{name: "missing", err: apperr.NotFoundf("no saved sheet"), message: "No saved sheet"},
		{name: "malformed", err: apperr.WrapWithCode(errors.New("bad json"), apperr.CodeDecode, "decode"), message: "malformed"},
		{name: "unreachable", err: apperr.Unavailablef("timeout"), message: "Could not reach"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.seed(testutils.WithHitPoints(9))
			s.persistence.EXPECT().Load(gomock.Any()).Return(nil, tc.err)

			result, err := s.svc.LoadRemote(s.ctx)
			s.Require().NoError(err)

			s.False(result.Changed)
			s.Contains(result.Message, tc.message)
			s.Equal(9, s.storedSheet().Combat.HP.Current)
		})
	}
}

func (s *ServiceTestSuite) TestExport() {
	s.seed()

	result, err := s.svc.Export(s.ctx)
	s.Require().NoError(err)

	s.Equal(github.ExportFileName, result.FileName)
	decoded, err := sheet.Decode(result.Data)
	s.Require().NoError(err)
	s.Equal(sheet.Default(), decoded)
}

func (s *ServiceTestSuite) TestExport_EmptyConditionsStayAList() {
	s.seed()

	_, err := s.svc.ToggleCondition(s.ctx, sheet.ConditionProne)
	s.Require().NoError(err)
	_, err = s.svc.ToggleCondition(s.ctx, sheet.ConditionProne)
	s.Require().NoError(err)
	_, err = s.svc.AdjustItem(s.ctx, sheet.ItemGold, 1)
	s.Require().NoError(err)

	result, err := s.svc.Export(s.ctx)
	s.Require().NoError(err)
	s.Contains(string(result.Data), `"conditions": []`)
	s.NotContains(string(result.Data), `"conditions": null`)
}

// failingLogRepository stores sheets normally and refuses narrative appends when told to
type failingLogRepository struct {
	sessions.Repository
	failAppends bool
}

func (r *failingLogRepository) AppendEntry(ctx context.Context, sessionID string, entry narrative.Entry) error {
	if r.failAppends {
		return apperr.Unavailablef("redis down")
	}
	return r.Repository.AppendEntry(ctx, sessionID, entry)
}

func (s *ServiceTestSuite) TestAction_LogFailureKeepsCommittedSheet() {
	s.seed()
	repo := &failingLogRepository{Repository: s.repo}
	svc := NewService(&ServiceConfig{
		SessionID:   sessionID,
		Repository:  repo,
		IDGenerator: uuid.NewSequenceGenerator("entry"),
		Logger:      zaptest.NewLogger(s.T()),
	})

	_, err := svc.Snapshot(s.ctx)
	s.Require().NoError(err)
	repo.failAppends = true

	result, err := svc.AdjustItem(s.ctx, sheet.ItemArrows, -7)
	s.Require().NoError(err)

	s.True(result.Changed)
	s.Equal(60, result.Sheet.Inventory[sheet.ItemArrows])
	s.Equal(60, s.storedSheet().Inventory[sheet.ItemArrows])
	s.Len(result.Entries, 1)
	s.Len(s.storedEntries(), 1)
}

func (s *ServiceTestSuite) TestSpellInfo() {
	s.spells.EXPECT().GetSpell("Hunter's Mark").Return(&dnd5e.SpellInfo{Key: "hunters-mark", Level: 1}, nil)

	info, err := s.svc.SpellInfo(s.ctx, "Hunter's Mark")
	s.Require().NoError(err)
	s.Equal("hunters-mark", info.Key)
}

func TestNewService_RequiresRepository(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewService(&ServiceConfig{SessionID: sessionID})
}

func TestService_WithoutGateways(t *testing.T) {
	svc := NewService(&ServiceConfig{
		SessionID:  sessionID,
		Repository: sessions.NewInMemoryRepository(),
	})
	ctx := context.Background()

	snap, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Sheet.Identity.Name != "Aegis" {
		t.Fatalf("unexpected sheet %q", snap.Sheet.Identity.Name)
	}

	if _, err := svc.SaveRemote(ctx); !apperr.IsUnavailable(err) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if _, err := svc.Chat(ctx, "hi"); !apperr.IsUnavailable(err) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
