package rules

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// ConditionResult reports a toggled condition
type ConditionResult struct {
	Outcome

	Condition string
	Active    bool
}

// ToggleCondition switches a vocabulary tag on or off
func (e *Engine) ToggleCondition(s *sheet.CharacterSheet, tag string) (*ConditionResult, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}
	if !sheet.IsKnownCondition(tag) {
		return nil, apperr.InvalidArgumentf("unknown condition %q", tag).
			WithMeta("condition", tag)
	}

	result := &ConditionResult{Condition: tag, Outcome: Outcome{Changed: true}}
	if s.Combat.Conditions.Remove(tag) {
		result.Message = fmt.Sprintf("🏷️ **%s** ended.", tag)
		return result, nil
	}

	s.Combat.Conditions.Add(tag)
	result.Active = true
	result.Message = fmt.Sprintf("🏷️ **%s** is now active.", tag)

	return result, nil
}

// ItemResult reports an inventory change
type ItemResult struct {
	Outcome

	Item     string
	Previous int
	Count    int
}

// AdjustItem changes an inventory count, floor zero. Unknown items are created on a
// positive delta.
func (e *Engine) AdjustItem(s *sheet.CharacterSheet, item string, delta int) (*ItemResult, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}

	item = strings.TrimSpace(item)
	if item == "" {
		return nil, apperr.InvalidArgument("item name is required")
	}

	key, exists := s.FindItem(item)
	if !exists {
		key = strings.ToLower(item)
	}
	item = key
	previous := s.Inventory[item]
	if !exists && delta <= 0 {
		return nil, apperr.InvalidArgumentf("unknown item %q", item).
			WithMeta("item", item)
	}

	count := max(0, previous+delta)
	result := &ItemResult{Item: item, Previous: previous, Count: count}
	if exists && count == previous {
		return result, nil
	}

	if s.Inventory == nil {
		s.Inventory = map[string]int{}
	}
	s.Inventory[item] = count

	result.Changed = true
	result.Message = fmt.Sprintf("🎒 **%s:** %d → %d.", sheet.DisplayName(item), previous, count)

	return result, nil
}

// HitPointsResult reports damage taken or healing received
type HitPointsResult struct {
	Outcome

	Delta   int
	Current int
	Max     int
}

// AdjustHitPoints applies damage (negative delta) or healing (positive delta), clamped to 0..max
func (e *Engine) AdjustHitPoints(s *sheet.CharacterSheet, delta int) (*HitPointsResult, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}

	hp := &s.Combat.HP
	result := &HitPointsResult{Max: hp.Max}

	switch {
	case delta < 0:
		lost := hp.Damage(-delta)
		result.Delta = -lost
		if lost > 0 {
			result.Changed = true
			result.Message = fmt.Sprintf("🩸 **Damage:** took %d (%d/%d HP).", lost, hp.Current, hp.Max)
		}
	case delta > 0:
		healed := hp.Heal(delta)
		result.Delta = healed
		if healed > 0 {
			result.Changed = true
			result.Message = fmt.Sprintf("❤️ **Healing:** +%d HP (%d/%d HP).", healed, hp.Current, hp.Max)
		}
	}

	result.Current = hp.Current
	return result, nil
}
