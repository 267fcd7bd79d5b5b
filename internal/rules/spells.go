package rules

import (
	"fmt"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// Payment says what a cast spell cost
type Payment string

const (
	PaidWithResource Payment = "resource"
	PaidWithSlot     Payment = "slot"
	PaidNothing      Payment = "cantrip"
)

// CastResult reports a cast spell
type CastResult struct {
	Outcome

	Spell     sheet.Spell
	Level     int
	PaidWith  Payment
	Remaining int
	Total     int
}

// CastSpell casts a known spell. The free-cast spell is paid from its resource while
// charges remain; everything else needs a slot of the spell's level. Level 0 spells are free.
func (e *Engine) CastSpell(s *sheet.CharacterSheet, spellName string) (*CastResult, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}

	spell, level, ok := s.FindSpell(spellName)
	if !ok {
		return nil, apperr.InvalidArgumentf("unknown spell %q", spellName).
			WithMeta("spell", spellName)
	}

	result := &CastResult{Spell: spell, Level: level}
	var cost string

	switch free := e.freeCastCounter(s, spell.Name); {
	case free != nil:
		free.Current--
		result.PaidWith = PaidWithResource
		result.Remaining = free.Current
		result.Total = free.Total
		cost = fmt.Sprintf("with %s (%d/%d left)", sheet.DisplayName(e.ruleset.FreeCastResource), free.Current, free.Total)
	case level == 0:
		result.PaidWith = PaidNothing
		cost = "as a cantrip"
	default:
		pool, ok := s.Resources.SpellSlots[level]
		if !ok || pool == nil || pool.Available() <= 0 {
			return nil, apperr.Refusedf("no level %d spell slots available", level).
				WithMeta("spell", spell.Name).
				WithMeta("level", level)
		}
		pool.Expended++
		result.PaidWith = PaidWithSlot
		result.Remaining = pool.Available()
		result.Total = pool.Total
		cost = fmt.Sprintf("with a level %d slot (%d/%d left)", level, pool.Available(), pool.Total)
	}

	msg := fmt.Sprintf("✨ **%s** cast %s.", spell.Name, cost)

	if tag, ok := e.ruleset.CastCondition(spell.Name); ok {
		s.Combat.Conditions.Add(tag)
	}
	if spell.Concentration {
		s.Combat.Conditions.Add(sheet.ConditionConcentrating)
		msg += " 🎯 Concentrating."
	}

	result.Changed = true
	result.Message = msg

	return result, nil
}

// freeCastCounter returns the resource paying for spellName when it is the free-cast
// spell and charges remain, nil otherwise
func (e *Engine) freeCastCounter(s *sheet.CharacterSheet, spellName string) *sheet.Counter {
	if !e.ruleset.IsFreeCast(spellName) {
		return nil
	}
	counter, ok := s.Resources.Abilities[e.ruleset.FreeCastResource]
	if !ok || counter == nil || counter.Current <= 0 {
		return nil
	}
	return counter
}
