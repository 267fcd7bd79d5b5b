// Package rules applies game actions to a character sheet.
//
// Every operation checks its preconditions and performs all of its dice rolls
// before touching the sheet, so a refusal or a roller failure leaves the sheet
// exactly as it was.
package rules

import (
	"strings"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
)

// BonusDice is extra damage rolled when a named ability is spent
type BonusDice struct {
	Count      int
	Sides      int
	DamageType string
}

// Ruleset holds the class-specific constants the engine needs
type Ruleset struct {
	ConstitutionModifier int
	HitDieSides          int

	// FreeCastSpell is cast from FreeCastResource before any slot is touched
	FreeCastSpell    string
	FreeCastResource string

	// Attacks whose name contains AmmunitionKeyword consume one AmmunitionItem
	AmmunitionKeyword string
	AmmunitionItem    string

	BonusDice map[string]BonusDice

	// CastConditions maps a spell to the condition tag it switches on
	CastConditions map[string]string
}

// DefaultRuleset is the level 3 Gloom Stalker ranger
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		ConstitutionModifier: 3,
		HitDieSides:          10,
		FreeCastSpell:        "Hunter's Mark",
		FreeCastResource:     sheet.AbilityFavoredEnemy,
		AmmunitionKeyword:    "bow",
		AmmunitionItem:       sheet.ItemArrows,
		BonusDice: map[string]BonusDice{
			sheet.AbilityDreadfulStrike: {Count: 2, Sides: 6, DamageType: "Psychic"},
		},
		CastConditions: map[string]string{
			"Hunter's Mark": sheet.ConditionHuntersMark,
		},
	}
}

// UsesAmmunition reports whether the named attack consumes ammunition
func (r *Ruleset) UsesAmmunition(attackName string) bool {
	if r.AmmunitionKeyword == "" || r.AmmunitionItem == "" {
		return false
	}
	return strings.Contains(strings.ToLower(attackName), strings.ToLower(r.AmmunitionKeyword))
}

// IsFreeCast reports whether the spell is paid from the free-cast resource
func (r *Ruleset) IsFreeCast(spellName string) bool {
	return r.FreeCastSpell != "" && strings.EqualFold(r.FreeCastSpell, spellName)
}

// CastCondition returns the condition a spell switches on, if any
func (r *Ruleset) CastCondition(spellName string) (string, bool) {
	for spell, tag := range r.CastConditions {
		if strings.EqualFold(spell, spellName) {
			return tag, true
		}
	}
	return "", false
}
