// Package sheet holds the character sheet aggregate: the single mutable record
// that every game action reads and writes.
package sheet

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/aegis-tracker/internal/dice"
)

// CharacterSheet is the root aggregate persisted as one JSON document
type CharacterSheet struct {
	Identity    Identity        `json:"character"`
	Combat      Combat          `json:"combat"`
	Resources   Resources       `json:"resources"`
	Attacks     []Attack        `json:"attacks"`
	SpellsKnown map[int][]Spell `json:"spells_known"`
	Inventory   map[string]int  `json:"inventory"`
}

// Identity names the character
type Identity struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Level int    `json:"level"`
}

// Combat groups vitals and the active condition tags
type Combat struct {
	HP         HitPoints  `json:"hp"`
	ArmorClass int        `json:"ac"`
	Initiative int        `json:"initiative"`
	Speed      int        `json:"speed"`
	Conditions Conditions `json:"conditions"`
}

// HitPoints tracks hit points and hit dice as two bounded counters
type HitPoints struct {
	Current        int `json:"current"`
	Max            int `json:"max"`
	HitDiceCurrent int `json:"hit_dice_current"`
	HitDiceTotal   int `json:"hit_dice_total"`
}

// Heal restores hit points up to max and returns the amount actually healed
func (hp *HitPoints) Heal(amount int) int {
	if amount <= 0 || hp.Current >= hp.Max {
		return 0
	}

	old := hp.Current
	hp.Current += amount
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}

	return hp.Current - old
}

// Damage lowers hit points, floor zero, and returns the amount actually lost
func (hp *HitPoints) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}

	old := hp.Current
	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}

	return old - hp.Current
}

// Attack is a weapon the character can roll
type Attack struct {
	Name       string `json:"name"`
	Bonus      int    `json:"bonus"`
	Damage     string `json:"damage"`
	DamageType string `json:"type"`
	Mastery    string `json:"mastery"`
}

// Formula parses the damage string. Only "NdM + K" is accepted.
func (a Attack) Formula() (dice.Formula, error) {
	return dice.ParseFormula(a.Damage)
}

// Spell is a known spell; its level is the key it is stored under
type Spell struct {
	Name          string `json:"name"`
	School        string `json:"school"`
	Concentration bool   `json:"concentration"`
}

// FindAttack looks up an attack by name, ignoring case
func (s *CharacterSheet) FindAttack(name string) (Attack, bool) {
	for _, attack := range s.Attacks {
		if strings.EqualFold(attack.Name, name) {
			return attack, true
		}
	}
	return Attack{}, false
}

// FindSpell looks up a known spell by name, ignoring case, and returns its level
func (s *CharacterSheet) FindSpell(name string) (Spell, int, bool) {
	for _, level := range s.SpellLevels() {
		for _, spell := range s.SpellsKnown[level] {
			if strings.EqualFold(spell.Name, name) {
				return spell, level, true
			}
		}
	}
	return Spell{}, 0, false
}

// FindItem returns the inventory key matching name, ignoring case.
// Exact matches win over case-folded ones.
func (s *CharacterSheet) FindItem(name string) (string, bool) {
	if _, ok := s.Inventory[name]; ok {
		return name, true
	}
	for _, key := range sortedKeys(s.Inventory) {
		if strings.EqualFold(key, name) {
			return key, true
		}
	}
	return "", false
}

// SpellLevels returns the known spell levels in ascending order
func (s *CharacterSheet) SpellLevels() []int {
	return sortedKeys(s.SpellsKnown)
}

// Clone returns a deep copy so a rule can work on it without touching the original
func (s *CharacterSheet) Clone() *CharacterSheet {
	if s == nil {
		return nil
	}

	out := &CharacterSheet{
		Identity:  s.Identity,
		Combat:    s.Combat,
		Resources: s.Resources.clone(),
	}
	// Empty collections stay empty, not nil, so an encoded clone matches the original.
	out.Combat.Conditions = make(Conditions, len(s.Combat.Conditions))
	copy(out.Combat.Conditions, s.Combat.Conditions)
	out.Attacks = slices.Clone(s.Attacks)

	if s.SpellsKnown != nil {
		out.SpellsKnown = make(map[int][]Spell, len(s.SpellsKnown))
		for level, spells := range s.SpellsKnown {
			out.SpellsKnown[level] = slices.Clone(spells)
		}
	}

	if s.Inventory != nil {
		out.Inventory = make(map[string]int, len(s.Inventory))
		for item, count := range s.Inventory {
			out.Inventory[item] = count
		}
	}

	return out
}

// normalize replaces nil collections with empty ones so rules never write to a nil map
func (s *CharacterSheet) normalize() {
	if s.Combat.Conditions == nil {
		s.Combat.Conditions = Conditions{}
	}
	if s.Resources.SpellSlots == nil {
		s.Resources.SpellSlots = map[int]*SlotPool{}
	}
	if s.Resources.Abilities == nil {
		s.Resources.Abilities = map[string]*Counter{}
	}
	if s.Attacks == nil {
		s.Attacks = []Attack{}
	}
	if s.SpellsKnown == nil {
		s.SpellsKnown = map[int][]Spell{}
	}
	if s.Inventory == nil {
		s.Inventory = map[string]int{}
	}
}
