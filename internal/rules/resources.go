package rules

import (
	"fmt"

	"github.com/KirkDiggler/aegis-tracker/internal/dice"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// ResourceResult reports a spend or restore of a per-rest ability
type ResourceResult struct {
	Outcome

	Name    string
	Current int
	Total   int

	// BonusRoll is set when spending the ability adds damage dice
	BonusRoll *dice.RollResult
	BonusDice *BonusDice
}

// SpendResource uses one charge of the named ability
func (e *Engine) SpendResource(s *sheet.CharacterSheet, name string) (*ResourceResult, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}

	counter, err := findAbility(s, name)
	if err != nil {
		return nil, err
	}
	if counter.Current <= 0 {
		return nil, apperr.Refusedf("no %s remaining", sheet.DisplayName(name)).
			WithMeta("resource", name)
	}

	result := &ResourceResult{Name: name}

	if bonus, ok := e.ruleset.BonusDice[name]; ok {
		roll, err := e.roll(bonus.Count, bonus.Sides, 0, "bonus damage")
		if err != nil {
			return nil, err
		}
		result.BonusRoll = roll
		result.BonusDice = &bonus
	}

	counter.Current--
	result.Current = counter.Current
	result.Total = counter.Total
	result.Changed = true

	if result.BonusDice != nil {
		result.Message = fmt.Sprintf("🧠 **%s Damage:** +%dd%d (%d) damage added!",
			result.BonusDice.DamageType, result.BonusDice.Count, result.BonusDice.Sides, result.BonusRoll.Total)
	} else {
		result.Message = fmt.Sprintf("✨ **%s:** used (%d/%d left).", sheet.DisplayName(name), counter.Current, counter.Total)
	}

	return result, nil
}

// RestoreResource gives back one charge. Restoring a full ability is a silent no-op.
func (e *Engine) RestoreResource(s *sheet.CharacterSheet, name string) (*ResourceResult, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}

	counter, err := findAbility(s, name)
	if err != nil {
		return nil, err
	}

	result := &ResourceResult{Name: name, Total: counter.Total}
	if counter.Current >= counter.Total {
		result.Current = counter.Current
		return result, nil
	}

	counter.Current++
	result.Current = counter.Current
	result.Changed = true
	result.Message = fmt.Sprintf("✨ **%s:** restored (%d/%d).", sheet.DisplayName(name), counter.Current, counter.Total)

	return result, nil
}

// SlotResult reports a spend or restore of a spell slot
type SlotResult struct {
	Outcome

	Level     int
	Available int
	Total     int
}

// SpendSpellSlot expends one slot of the given level
func (e *Engine) SpendSpellSlot(s *sheet.CharacterSheet, level int) (*SlotResult, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}

	pool, err := findSlots(s, level)
	if err != nil {
		return nil, err
	}
	if pool.Available() <= 0 {
		return nil, apperr.Refusedf("no level %d spell slots available", level).
			WithMeta("level", level)
	}

	pool.Expended++

	return &SlotResult{
		Outcome: Outcome{
			Changed: true,
			Message: fmt.Sprintf("🔷 **Spell Slot:** level %d expended (%d/%d left).", level, pool.Available(), pool.Total),
		},
		Level:     level,
		Available: pool.Available(),
		Total:     pool.Total,
	}, nil
}

// RestoreSpellSlot recovers one expended slot. A full pool is a silent no-op.
func (e *Engine) RestoreSpellSlot(s *sheet.CharacterSheet, level int) (*SlotResult, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}

	pool, err := findSlots(s, level)
	if err != nil {
		return nil, err
	}

	result := &SlotResult{Level: level, Total: pool.Total}
	if pool.Expended > 0 {
		pool.Expended--
		result.Changed = true
		result.Message = fmt.Sprintf("🔷 **Spell Slot:** level %d recovered (%d/%d available).", level, pool.Available(), pool.Total)
	}
	result.Available = pool.Available()

	return result, nil
}

func findAbility(s *sheet.CharacterSheet, name string) (*sheet.Counter, error) {
	counter, ok := s.Resources.Abilities[name]
	if !ok || counter == nil {
		return nil, apperr.InvalidArgumentf("unknown resource %q", name).
			WithMeta("resource", name)
	}
	return counter, nil
}

func findSlots(s *sheet.CharacterSheet, level int) (*sheet.SlotPool, error) {
	pool, ok := s.Resources.SpellSlots[level]
	if !ok || pool == nil {
		return nil, apperr.InvalidArgumentf("no spell slots of level %d", level).
			WithMeta("level", level)
	}
	return pool, nil
}
