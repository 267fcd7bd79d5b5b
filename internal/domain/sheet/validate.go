package sheet

import (
	"slices"
	"strings"

	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// WeaponMasteries is the fixed mastery vocabulary
var WeaponMasteries = []string{"Cleave", "Graze", "Nick", "Push", "Sap", "Slow", "Topple", "Vex"}

// Validate checks every invariant of the sheet
func (s *CharacterSheet) Validate() error {
	if s == nil {
		return apperr.Validationf("sheet is nil")
	}
	if strings.TrimSpace(s.Identity.Name) == "" {
		return apperr.Validationf("character name is required")
	}
	if s.Identity.Level < 1 {
		return apperr.Validationf("level must be positive, got %d", s.Identity.Level)
	}

	hp := s.Combat.HP
	if hp.Max < 1 {
		return apperr.Validationf("max hit points must be positive, got %d", hp.Max)
	}
	if hp.Current < 0 || hp.Current > hp.Max {
		return apperr.Validationf("hit points %d outside 0..%d", hp.Current, hp.Max)
	}
	if hp.HitDiceTotal < 1 {
		return apperr.Validationf("hit dice total must be positive, got %d", hp.HitDiceTotal)
	}
	if hp.HitDiceCurrent < 0 || hp.HitDiceCurrent > hp.HitDiceTotal {
		return apperr.Validationf("hit dice %d outside 0..%d", hp.HitDiceCurrent, hp.HitDiceTotal)
	}

	if tag, dup := s.Combat.Conditions.duplicate(); dup {
		return apperr.Validationf("condition %q listed twice", tag)
	}
	for _, tag := range s.Combat.Conditions {
		if !IsKnownCondition(tag) {
			return apperr.Validationf("unknown condition %q", tag)
		}
	}

	for level, pool := range s.Resources.SpellSlots {
		if level < 1 {
			return apperr.Validationf("spell slot level %d is not positive", level)
		}
		if pool == nil {
			return apperr.Validationf("spell slots level %d are empty", level)
		}
		if pool.Total < 0 || pool.Expended < 0 || pool.Expended > pool.Total {
			return apperr.Validationf("spell slots level %d: expended %d outside 0..%d", level, pool.Expended, pool.Total)
		}
	}
	for name, counter := range s.Resources.Abilities {
		if counter == nil {
			return apperr.Validationf("resource %q is empty", name)
		}
		if counter.Total < 0 || counter.Current < 0 || counter.Current > counter.Total {
			return apperr.Validationf("resource %q: current %d outside 0..%d", name, counter.Current, counter.Total)
		}
	}

	seenAttacks := make(map[string]struct{}, len(s.Attacks))
	for _, attack := range s.Attacks {
		key := strings.ToLower(attack.Name)
		if key == "" {
			return apperr.Validationf("attack without a name")
		}
		if _, dup := seenAttacks[key]; dup {
			return apperr.Validationf("attack %q listed twice", attack.Name)
		}
		seenAttacks[key] = struct{}{}
		if attack.Mastery != "" && !slices.Contains(WeaponMasteries, attack.Mastery) {
			return apperr.Validationf("attack %q has unknown mastery %q", attack.Name, attack.Mastery)
		}
	}

	for level, spells := range s.SpellsKnown {
		if level < 0 {
			return apperr.Validationf("spell level %d is negative", level)
		}
		seen := make(map[string]struct{}, len(spells))
		for _, spell := range spells {
			key := strings.ToLower(spell.Name)
			if _, dup := seen[key]; dup {
				return apperr.Validationf("spell %q listed twice at level %d", spell.Name, level)
			}
			seen[key] = struct{}{}
		}
	}

	for item, count := range s.Inventory {
		if count < 0 {
			return apperr.Validationf("inventory %q has negative count %d", item, count)
		}
	}

	return nil
}
