package rules

import (
	"fmt"

	"github.com/KirkDiggler/aegis-tracker/internal/dice"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// AttackResult reports one attack roll
type AttackResult struct {
	Outcome

	Attack     sheet.Attack
	AttackRoll *dice.RollResult
	HitTotal   int
	Natural    int
	Critical   bool
	// Miss flags a natural 1. Damage is still rolled and reported.
	Miss bool

	DamageRoll *dice.RollResult
	Damage     int
	// FormulaValid is false when the damage string is not "NdM + K"; Damage is then 0
	FormulaValid bool

	AmmunitionUsed bool
	AmmunitionLeft int
}

// AttackRoll rolls to hit and for damage with the named attack
func (e *Engine) AttackRoll(s *sheet.CharacterSheet, attackName string) (*AttackResult, error) {
	if err := requireSheet(s); err != nil {
		return nil, err
	}

	attack, ok := s.FindAttack(attackName)
	if !ok {
		return nil, apperr.InvalidArgumentf("unknown attack %q", attackName).
			WithMeta("attack", attackName)
	}

	toHit, err := e.roll(1, 20, attack.Bonus, "attack")
	if err != nil {
		return nil, err
	}

	result := &AttackResult{
		Attack:     attack,
		AttackRoll: toHit,
		HitTotal:   toHit.Total,
		Natural:    toHit.Natural(),
		Critical:   toHit.IsCrit,
		Miss:       toHit.IsFumble,
	}

	if formula, ferr := attack.Formula(); ferr == nil {
		damage, err := e.rollFormula(formula, "damage")
		if err != nil {
			return nil, err
		}
		result.DamageRoll = damage
		result.Damage = damage.Total
		result.FormulaValid = true
	}

	// Every roll is done; only now touch the sheet
	if e.ruleset.UsesAmmunition(attack.Name) {
		item := e.ruleset.AmmunitionItem
		if s.Inventory == nil {
			s.Inventory = map[string]int{}
		}
		if s.Inventory[item] > 0 {
			s.Inventory[item]--
		}
		result.AmmunitionUsed = true
		result.AmmunitionLeft = s.Inventory[item]
	}

	result.Changed = true
	result.Message = attackMessage(result)

	return result, nil
}

func attackMessage(r *AttackResult) string {
	msg := fmt.Sprintf("⚔️ **%s:** Rolled **%d** (Nat %d) for **%d** damage.", r.Attack.Name, r.HitTotal, r.Natural, r.Damage)
	if r.Critical {
		msg += " 💥 **CRIT!**"
	}
	if r.Miss {
		msg += " 💀 **MISS!**"
	}
	return msg
}
