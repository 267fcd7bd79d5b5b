package testutils

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/narrative"
	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
)

// FixedTime is the clock reading used by fixtures
var FixedTime = time.Date(2024, 9, 17, 19, 30, 0, 0, time.UTC)

// CreateTestSheet returns the default sheet with each mutation applied in order
func CreateTestSheet(mutations ...func(s *sheet.CharacterSheet)) *sheet.CharacterSheet {
	s := sheet.Default()
	for _, mutate := range mutations {
		mutate(s)
	}
	return s
}

// WithHitPoints sets current hit points
func WithHitPoints(current int) func(s *sheet.CharacterSheet) {
	return func(s *sheet.CharacterSheet) {
		s.Combat.HP.Current = current
	}
}

// WithHitDice sets remaining hit dice
func WithHitDice(current int) func(s *sheet.CharacterSheet) {
	return func(s *sheet.CharacterSheet) {
		s.Combat.HP.HitDiceCurrent = current
	}
}

// WithExpendedSlots sets expended slots of a level
func WithExpendedSlots(level, expended int) func(s *sheet.CharacterSheet) {
	return func(s *sheet.CharacterSheet) {
		s.Resources.SpellSlots[level].Expended = expended
	}
}

// CreateTestEntry creates a narrative entry stamped with FixedTime
func CreateTestEntry(id string, role narrative.Role, text string) narrative.Entry {
	return narrative.Entry{
		ID:        id,
		Role:      role,
		Text:      text,
		CreatedAt: FixedTime,
	}
}

// CreateTestEntries returns the welcome entry followed by n-1 alternating exchanges
func CreateTestEntries(n int) []narrative.Entry {
	entries := make([]narrative.Entry, 0, n)
	for idx := 0; idx < n; idx++ {
		switch {
		case idx == 0:
			entries = append(entries, narrative.Welcome("entry-1", FixedTime))
		case idx%2 == 1:
			entries = append(entries, CreateTestEntry(fmt.Sprintf("entry-%d", idx+1), narrative.RoleUser, fmt.Sprintf("question %d", idx)))
		default:
			entries = append(entries, CreateTestEntry(fmt.Sprintf("entry-%d", idx+1), narrative.RoleAssistant, fmt.Sprintf("answer %d", idx)))
		}
	}
	return entries
}
