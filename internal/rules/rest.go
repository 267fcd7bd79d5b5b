package rules

import (
	"fmt"

	"github.com/KirkDiggler/aegis-tracker/internal/dice"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

const (
	longRestMessage  = "💤 **Long Rest Complete:** HP, Spells, and Abilities fully restored."
	shortRestMessage = "⏳ **Short Rest:** You catch your breath. Use the 'Spend Hit Die' button to heal."
)

// HitDieResult reports one spent hit die
type HitDieResult struct {
	Outcome

	Roll      *dice.RollResult
	Healed    int
	HitPoints int
	DiceLeft  int
}

// SpendHitDie rolls one hit die plus the constitution modifier and heals that much
func (e *Engine) SpendHitDie(s *sheet.CharacterSheet) (*HitDieResult, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}

	hp := &s.Combat.HP
	if hp.HitDiceCurrent <= 0 {
		return nil, apperr.Refused("no hit dice remaining")
	}

	roll, err := e.roll(1, e.ruleset.HitDieSides, e.ruleset.ConstitutionModifier, "hit die")
	if err != nil {
		return nil, err
	}

	healed := hp.Heal(roll.Total)
	hp.HitDiceCurrent--

	return &HitDieResult{
		Outcome: Outcome{
			Changed: true,
			Message: fmt.Sprintf("🩹 **Short Rest:** Rolled %d+%d. Healed **%d HP**.", roll.RawTotal, roll.Bonus, healed),
		},
		Roll:      roll,
		Healed:    healed,
		HitPoints: hp.Current,
		DiceLeft:  hp.HitDiceCurrent,
	}, nil
}

// ShortRest changes nothing; healing happens through SpendHitDie
func (e *Engine) ShortRest(s *sheet.CharacterSheet) (*Outcome, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}
	return &Outcome{Changed: true, Message: shortRestMessage}, nil
}

// LongRest restores hit points, abilities and slots, regains half the hit dice
// (at least one) and clears every condition
func (e *Engine) LongRest(s *sheet.CharacterSheet) (*Outcome, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}

	hp := &s.Combat.HP
	hp.Current = hp.Max

	for _, counter := range s.Resources.Abilities {
		counter.Current = counter.Total
	}
	for _, pool := range s.Resources.SpellSlots {
		pool.Expended = 0
	}

	regain := max(1, hp.HitDiceTotal/2)
	hp.HitDiceCurrent = min(hp.HitDiceTotal, hp.HitDiceCurrent+regain)

	s.Combat.Conditions.Clear()

	return &Outcome{Changed: true, Message: longRestMessage}, nil
}
