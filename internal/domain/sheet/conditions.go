package sheet

import "slices"

// Condition tags the sheet can carry
const (
	ConditionInvisible     = "Invisible"
	ConditionProne         = "Prone"
	ConditionPoisoned      = "Poisoned"
	ConditionFrightened    = "Frightened"
	ConditionGrappled      = "Grappled"
	ConditionHuntersMark   = "Hunter's Mark (Active)"
	ConditionConcentrating = "Concentrating"
)

// ConditionVocabulary is the fixed set of tags, in display order
var ConditionVocabulary = []string{
	ConditionInvisible,
	ConditionProne,
	ConditionPoisoned,
	ConditionFrightened,
	ConditionGrappled,
	ConditionHuntersMark,
	ConditionConcentrating,
}

// IsKnownCondition reports whether tag belongs to the vocabulary
func IsKnownCondition(tag string) bool {
	return slices.Contains(ConditionVocabulary, tag)
}

// Conditions is an insertion-ordered set of condition tags
type Conditions []string

// Has reports whether the tag is active
func (c Conditions) Has(tag string) bool {
	return slices.Contains(c, tag)
}

// Add inserts the tag unless present. Returns false when it was already there.
func (c *Conditions) Add(tag string) bool {
	if c.Has(tag) {
		return false
	}
	*c = append(*c, tag)
	return true
}

// Remove deletes the tag. Returns false when it was not there.
func (c *Conditions) Remove(tag string) bool {
	i := slices.Index(*c, tag)
	if i < 0 {
		return false
	}
	*c = slices.Delete(*c, i, i+1)
	return true
}

// Clear removes every tag
func (c *Conditions) Clear() {
	*c = Conditions{}
}

func (c Conditions) duplicate() (string, bool) {
	seen := make(map[string]struct{}, len(c))
	for _, tag := range c {
		if _, ok := seen[tag]; ok {
			return tag, true
		}
		seen[tag] = struct{}{}
	}
	return "", false
}
