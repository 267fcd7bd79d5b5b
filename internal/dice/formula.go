package dice

import (
	"fmt"
	"regexp"
	"strconv"
)

// formulaPattern accepts exactly the "NdM + K" shape, whitespace tolerant
var formulaPattern = regexp.MustCompile(`^\s*(\d+)\s*d\s*(\d+)\s*\+\s*(\d+)\s*$`)

// Upper bounds on a formula. Anything larger is not a weapon.
const (
	MaxDiceCount = 100
	MaxDiceSides = 1000
	MaxModifier  = 1000
)

// Formula is a parsed damage expression: Count dice of Sides faces plus Modifier
type Formula struct {
	Count    int
	Sides    int
	Modifier int
}

// ParseFormula parses "NdM + K". Any other shape is an error.
func ParseFormula(s string) (Formula, error) {
	m := formulaPattern.FindStringSubmatch(s)
	if m == nil {
		return Formula{}, fmt.Errorf("invalid dice formula %q", s)
	}

	count, err := strconv.Atoi(m[1])
	if err != nil {
		return Formula{}, fmt.Errorf("invalid dice count in %q: %w", s, err)
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return Formula{}, fmt.Errorf("invalid dice size in %q: %w", s, err)
	}
	modifier, err := strconv.Atoi(m[3])
	if err != nil {
		return Formula{}, fmt.Errorf("invalid modifier in %q: %w", s, err)
	}

	if count < 1 || sides < 1 {
		return Formula{}, fmt.Errorf("invalid dice formula %q", s)
	}
	if count > MaxDiceCount || sides > MaxDiceSides || modifier > MaxModifier {
		return Formula{}, fmt.Errorf("dice formula %q out of range (max %dd%d + %d)", s, MaxDiceCount, MaxDiceSides, MaxModifier)
	}

	return Formula{Count: count, Sides: sides, Modifier: modifier}, nil
}

// Roll rolls the formula with the given roller
func (f Formula) Roll(roller Roller) (*RollResult, error) {
	return roller.Roll(f.Count, f.Sides, f.Modifier)
}

func (f Formula) String() string {
	return fmt.Sprintf("%dd%d + %d", f.Count, f.Sides, f.Modifier)
}
