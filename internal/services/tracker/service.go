package tracker

//go:generate mockgen -destination=mock/mock_service.go -package=mocktracker -source=service.go

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/aegis-tracker/internal/clients/assistant"
	"github.com/KirkDiggler/aegis-tracker/internal/clients/dnd5e"
	"github.com/KirkDiggler/aegis-tracker/internal/clients/github"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/narrative"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
	"github.com/KirkDiggler/aegis-tracker/internal/logging"
	"github.com/KirkDiggler/aegis-tracker/internal/metrics"
	"github.com/KirkDiggler/aegis-tracker/internal/repositories/sessions"
	"github.com/KirkDiggler/aegis-tracker/internal/rules"
	"github.com/KirkDiggler/aegis-tracker/internal/uuid"
)

// RestKind picks short or long rest
type RestKind string

const (
	RestShort RestKind = "short"
	RestLong  RestKind = "long"
)

const (
	defaultGatewayTimeout = 30 * time.Second

	savedMessage  = "✅ Saved to GitHub!"
	loadedMessage = "📂 Sheet loaded from GitHub."
)

// Service owns the single session: one sheet, one narrative log, one mutator at a time
type Service interface {
	// Snapshot returns the current sheet and narrative, creating the session on first use
	Snapshot(ctx context.Context) (*Snapshot, error)

	Attack(ctx context.Context, attackName string) (*ActionResult, error)
	SpendHitDie(ctx context.Context) (*ActionResult, error)
	Rest(ctx context.Context, kind RestKind) (*ActionResult, error)
	SpendResource(ctx context.Context, name string) (*ActionResult, error)
	RestoreResource(ctx context.Context, name string) (*ActionResult, error)
	SpendSpellSlot(ctx context.Context, level int) (*ActionResult, error)
	RestoreSpellSlot(ctx context.Context, level int) (*ActionResult, error)
	CastSpell(ctx context.Context, spellName string) (*ActionResult, error)
	ToggleCondition(ctx context.Context, tag string) (*ActionResult, error)
	AdjustItem(ctx context.Context, item string, delta int) (*ActionResult, error)
	AdjustHitPoints(ctx context.Context, delta int) (*ActionResult, error)

	// Chat appends the utterance, asks the assistant and appends its reply.
	// On assistant failure the user entry stays and the error is returned.
	Chat(ctx context.Context, utterance string) (*ChatResult, error)

	// SaveRemote writes the sheet to the persistence gateway
	SaveRemote(ctx context.Context) (*ActionResult, error)
	// LoadRemote replaces the sheet with the saved one. Gateway failures are reported
	// in the message and leave the sheet unchanged.
	LoadRemote(ctx context.Context) (*ActionResult, error)
	// Export renders the sheet as a downloadable backup
	Export(ctx context.Context) (*ExportResult, error)

	// SpellInfo looks up reference data for a spell
	SpellInfo(ctx context.Context, name string) (*dnd5e.SpellInfo, error)
}

// Snapshot is a copy of the session state
type Snapshot struct {
	Sheet   *sheet.CharacterSheet
	Entries []narrative.Entry
}

// ActionResult is the state after an action plus what to tell the user
type ActionResult struct {
	Snapshot
	Changed bool
	Message string
}

// ChatResult carries the assistant reply
type ChatResult struct {
	Snapshot
	Reply string
}

// ExportResult is a file to hand to the user
type ExportResult struct {
	FileName string
	Data     []byte
}

// ServiceConfig holds the dependencies of the tracker service
type ServiceConfig struct {
	SessionID   string
	Repository  sessions.Repository
	Engine      *rules.Engine
	Narrator    assistant.Narrator
	Persistence github.Client
	SpellLookup dnd5e.Client
	IDGenerator uuid.Generator
	Clock       func() time.Time
	Logger      *zap.Logger

	GatewayTimeout time.Duration
}

type service struct {
	mu sync.Mutex

	sessionID   string
	repository  sessions.Repository
	engine      *rules.Engine
	narrator    assistant.Narrator
	persistence github.Client
	spellLookup dnd5e.Client
	ids         uuid.Generator
	now         func() time.Time
	logger      *zap.Logger
	timeout     time.Duration
}

// NewService creates the tracker service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.SessionID == "" {
		panic("session ID is required")
	}

	svc := &service{
		sessionID:   cfg.SessionID,
		repository:  cfg.Repository,
		engine:      cfg.Engine,
		narrator:    cfg.Narrator,
		persistence: cfg.Persistence,
		spellLookup: cfg.SpellLookup,
		ids:         cfg.IDGenerator,
		now:         cfg.Clock,
		logger:      logging.OrNop(cfg.Logger).With(zap.String("session_id", cfg.SessionID)),
		timeout:     cfg.GatewayTimeout,
	}

	if svc.engine == nil {
		svc.engine = rules.NewEngine(nil)
	}
	if svc.ids == nil {
		svc.ids = uuid.NewGoogleUUIDGenerator()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	if svc.timeout <= 0 {
		svc.timeout = defaultGatewayTimeout
	}

	return svc
}

func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *service) Attack(ctx context.Context, attackName string) (*ActionResult, error) {
	return s.apply(ctx, "attack", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
		return s.engine.AttackRoll(sh, attackName)
	})
}

func (s *service) SpendHitDie(ctx context.Context) (*ActionResult, error) {
	return s.apply(ctx, "spend_hit_die", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
		return s.engine.SpendHitDie(sh)
	})
}

func (s *service) Rest(ctx context.Context, kind RestKind) (*ActionResult, error) {
	switch kind {
	case RestShort:
		return s.apply(ctx, "short_rest", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
			return s.engine.ShortRest(sh)
		})
	case RestLong:
		return s.apply(ctx, "long_rest", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
			return s.engine.LongRest(sh)
		})
	default:
		return nil, apperr.InvalidArgumentf("unknown rest %q", kind)
	}
}

func (s *service) SpendResource(ctx context.Context, name string) (*ActionResult, error) {
	return s.apply(ctx, "spend_resource", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
		return s.engine.SpendResource(sh, name)
	})
}

func (s *service) RestoreResource(ctx context.Context, name string) (*ActionResult, error) {
	return s.apply(ctx, "restore_resource", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
		return s.engine.RestoreResource(sh, name)
	})
}

func (s *service) SpendSpellSlot(ctx context.Context, level int) (*ActionResult, error) {
	return s.apply(ctx, "spend_spell_slot", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
		return s.engine.SpendSpellSlot(sh, level)
	})
}

func (s *service) RestoreSpellSlot(ctx context.Context, level int) (*ActionResult, error) {
	return s.apply(ctx, "restore_spell_slot", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
		return s.engine.RestoreSpellSlot(sh, level)
	})
}

func (s *service) CastSpell(ctx context.Context, spellName string) (*ActionResult, error) {
	return s.apply(ctx, "cast_spell", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
		return s.engine.CastSpell(sh, spellName)
	})
}

func (s *service) ToggleCondition(ctx context.Context, tag string) (*ActionResult, error) {
	return s.apply(ctx, "toggle_condition", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
		return s.engine.ToggleCondition(sh, tag)
	})
}

func (s *service) AdjustItem(ctx context.Context, item string, delta int) (*ActionResult, error) {
	return s.apply(ctx, "adjust_item", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
		return s.engine.AdjustItem(sh, item, delta)
	})
}

func (s *service) AdjustHitPoints(ctx context.Context, delta int) (*ActionResult, error) {
	return s.apply(ctx, "adjust_hit_points", func(sh *sheet.CharacterSheet) (rules.Reporter, error) {
		return s.engine.AdjustHitPoints(sh, delta)
	})
}

// apply runs one rule against a copy of the sheet and commits the copy only on success
func (s *service) apply(ctx context.Context, action string, rule func(*sheet.CharacterSheet) (rules.Reporter, error)) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	working := snap.Sheet.Clone()
	reporter, err := rule(working)
	metrics.ObserveAction(action, err)
	if err != nil {
		if apperr.IsUserFacing(err) {
			s.logger.Debug("Action refused", zap.String("action", action), zap.Error(err))
		} else {
			s.logger.Error("Action failed", zap.String("action", action), zap.Error(err))
		}
		return nil, err
	}

	outcome := reporter.Report()
	result := &ActionResult{Snapshot: *snap, Changed: outcome.Changed, Message: outcome.Message}
	if !outcome.Changed {
		return result, nil
	}

	if err := working.Validate(); err != nil {
		s.logger.Error("Action broke an invariant", zap.String("action", action), zap.Error(err))
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "action produced an invalid sheet").
			WithMeta("action", action)
	}

	if err := s.repository.SaveSheet(ctx, s.sessionID, working); err != nil {
		return nil, apperr.Wrap(err, "failed to store sheet")
	}
	result.Sheet = working

	// The sheet is committed here; an append failure only loses the log line.
	if outcome.Message != "" {
		entry, err := s.appendEntry(ctx, narrative.RoleAssistant, outcome.Message)
		if err != nil {
			s.logger.Warn("Action applied but not logged", zap.String("action", action), zap.Error(err))
		} else {
			log := narrative.NewLog(result.Entries...)
			log.Append(entry)
			result.Entries = log.Entries()
		}
	}

	s.logger.Info("Action applied", zap.String("action", action), zap.String("message", outcome.Message))

	return result, nil
}

func (s *service) Chat(ctx context.Context, utterance string) (*ChatResult, error) {
	if utterance == "" {
		return nil, apperr.InvalidArgument("message cannot be empty")
	}
	if s.narrator == nil {
		return nil, apperr.Unavailablef("no assistant configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	log := narrative.NewLog(snap.Entries...)

	userEntry, err := s.appendEntry(ctx, narrative.RoleUser, utterance)
	if err != nil {
		return nil, err
	}
	log.Append(userEntry)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	reply, err := s.narrator.Narrate(callCtx, snap.Sheet, utterance)
	metrics.ObserveGateway(metrics.GatewayAssistant, started, err)
	if err != nil {
		s.logger.Warn("Assistant call failed", zap.Error(err))
		return nil, apperr.Wrap(err, "assistant failed")
	}

	replyEntry, err := s.appendEntry(ctx, narrative.RoleAssistant, reply)
	if err != nil {
		return nil, err
	}
	log.Append(replyEntry)
	snap.Entries = log.Entries()

	return &ChatResult{Snapshot: *snap, Reply: reply}, nil
}

func (s *service) SaveRemote(ctx context.Context) (*ActionResult, error) {
	if s.persistence == nil {
		return nil, apperr.Unavailablef("no persistence configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	err = s.persistence.Save(callCtx, snap.Sheet)
	metrics.ObserveGateway(metrics.GatewayGitHub, started, err)
	if err != nil {
		s.logger.Warn("Save failed", zap.Error(err))
		return nil, apperr.Wrap(err, "save failed")
	}

	s.logger.Info("Sheet saved")
	return &ActionResult{Snapshot: *snap, Message: savedMessage}, nil
}

func (s *service) LoadRemote(ctx context.Context) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	loaded, err := s.fetchRemote(ctx)
	if err != nil {
		return &ActionResult{Snapshot: *snap, Message: loadFailureMessage(err)}, nil
	}

	if err := s.repository.SaveSheet(ctx, s.sessionID, loaded); err != nil {
		return nil, apperr.Wrap(err, "failed to store sheet")
	}

	s.logger.Info("Sheet loaded")
	snap.Sheet = loaded
	return &ActionResult{Snapshot: *snap, Changed: true, Message: loadedMessage}, nil
}

func (s *service) Export(ctx context.Context) (*ExportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := github.Export(snap.Sheet)
	if err != nil {
		return nil, err
	}

	return &ExportResult{FileName: github.ExportFileName, Data: data}, nil
}

func (s *service) SpellInfo(ctx context.Context, name string) (*dnd5e.SpellInfo, error) {
	if s.spellLookup == nil {
		return nil, apperr.Unavailablef("no spell reference configured")
	}

	started := time.Now()
	info, err := s.spellLookup.GetSpell(name)
	metrics.ObserveGateway(metrics.GatewayDND5E, started, err)
	if err != nil {
		s.logger.Warn("Spell lookup failed", zap.String("spell", name), zap.Error(err))
		return nil, err
	}

	return info, nil
}

// load reads the sheet and log together. A session that has never been stored is
// seeded from the saved document, or the default sheet, plus the welcome entry.
// Callers hold s.mu.
func (s *service) load(ctx context.Context) (*Snapshot, error) {
	var (
		current *sheet.CharacterSheet
		entries []narrative.Entry
		missing bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.repository.GetSheet(gctx, s.sessionID)
		if apperr.IsNotFound(err) {
			missing = true
			return nil
		}
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.repository.ListEntries(gctx, s.sessionID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Wrap(err, "failed to load session")
	}

	if missing {
		current = s.seedSheet(ctx)
		if err := s.repository.SaveSheet(ctx, s.sessionID, current); err != nil {
			return nil, apperr.Wrap(err, "failed to store sheet")
		}
	}

	if len(entries) == 0 {
		welcome := narrative.Welcome(s.ids.New(), s.now())
		if err := s.repository.AppendEntry(ctx, s.sessionID, welcome); err != nil {
			return nil, apperr.Wrap(err, "failed to store welcome entry")
		}
		entries = []narrative.Entry{welcome}
	}

	return &Snapshot{Sheet: current, Entries: entries}, nil
}

// seedSheet prefers the saved document and falls back to the default sheet
func (s *service) seedSheet(ctx context.Context) *sheet.CharacterSheet {
	if s.persistence != nil {
		loaded, err := s.fetchRemote(ctx)
		if err == nil {
			s.logger.Info("Session seeded from saved sheet")
			return loaded
		}
		s.logger.Info("Starting from default sheet", zap.String("reason", err.Error()))
	}
	return sheet.Default()
}

func (s *service) fetchRemote(ctx context.Context) (*sheet.CharacterSheet, error) {
	if s.persistence == nil {
		return nil, apperr.Unavailablef("no persistence configured")
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	loaded, err := s.persistence.Load(callCtx)
	metrics.ObserveGateway(metrics.GatewayGitHub, started, err)
	if err != nil {
		s.logger.Warn("Load failed", zap.Error(err))
		return nil, err
	}
	return loaded, nil
}

func (s *service) appendEntry(ctx context.Context, role narrative.Role, text string) (narrative.Entry, error) {
	entry := narrative.Entry{
		ID:        s.ids.New(),
		Role:      role,
		Text:      text,
		CreatedAt: s.now(),
	}
	if err := s.repository.AppendEntry(ctx, s.sessionID, entry); err != nil {
		return narrative.Entry{}, apperr.Wrap(err, "failed to append narrative entry")
	}
	return entry, nil
}

func loadFailureMessage(err error) string {
	switch {
	case apperr.IsNotFound(err):
		return "⚠️ No saved sheet found. Keeping the current sheet."
	case apperr.IsDecode(err):
		return "⚠️ The saved sheet is malformed. Keeping the current sheet."
	default:
		return "⚠️ Could not reach GitHub. Keeping the current sheet."
	}
}
