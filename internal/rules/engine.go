package rules

import (
	"github.com/KirkDiggler/aegis-tracker/internal/dice"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// Outcome is what every operation reports back. Changed is false for silent no-ops,
// which carry no message and should not reach the narrative.
type Outcome struct {
	Changed bool
	Message string
}

// Engine applies actions to a sheet using its roller and ruleset
type Engine struct {
	roller  dice.Roller
	ruleset *Ruleset
}

// EngineConfig holds the dependencies of an Engine
type EngineConfig struct {
	Roller  dice.Roller
	Ruleset *Ruleset
}

// NewEngine creates an Engine. Missing dependencies fall back to the random roller
// and the default ranger ruleset.
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}

	e := &Engine{
		roller:  cfg.Roller,
		ruleset: cfg.Ruleset,
	}

	if e.roller == nil {
		e.roller = dice.NewRandomRoller()
	}
	if e.ruleset == nil {
		e.ruleset = DefaultRuleset()
	}

	return e
}

// Ruleset returns the constants the engine was built with
func (e *Engine) Ruleset() *Ruleset {
	return e.ruleset
}

func (e *Engine) roll(count, sides, bonus int, what string) (*dice.RollResult, error) {
	result, err := e.roller.Roll(count, sides, bonus)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to roll "+what).
			WithMeta("dice", count).
			WithMeta("sides", sides)
	}
	return result, nil
}

func (e *Engine) rollFormula(formula dice.Formula, what string) (*dice.RollResult, error) {
	result, err := formula.Roll(e.roller)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to roll "+what).
			WithMeta("formula", formula.String())
	}
	return result, nil
}

func requireSheet(s *sheet.CharacterSheet) error {
	if s == nil {
		return apperr.InvalidArgument("sheet cannot be nil")
	}
	return nil
}

// Reporter is implemented by every operation result
type Reporter interface {
	Report() Outcome
}

// Report returns the outcome itself; result types embed Outcome and inherit it
func (o Outcome) Report() Outcome {
	return o
}
