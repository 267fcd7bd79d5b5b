package dice

// Roller provides an interface for rolling dice
// This allows us to inject deterministic rolls in tests
type Roller interface {
	// Roll rolls count dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	RawTotal int   // Sum of all dice without bonus
	Rolls    []int // Individual die results
	Bonus    int
	Count    int
	Sides    int
	IsCrit   bool // natural 20 on a single d20
	IsFumble bool // natural 1 on a single d20
}

// Natural returns the first die of the roll, the value crit/fumble checks look at
func (r *RollResult) Natural() int {
	if r == nil || len(r.Rolls) == 0 {
		return 0
	}
	return r.Rolls[0]
}

// NewRollResult builds a result from individual die values and flags d20 crits/fumbles
func NewRollResult(rolls []int, sides, bonus int) *RollResult {
	raw := 0
	for _, roll := range rolls {
		raw += roll
	}

	result := &RollResult{
		Total:    raw + bonus,
		RawTotal: raw,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    len(rolls),
		Sides:    sides,
	}

	if len(rolls) == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}

	return result
}
