package dice

import (
	"errors"
	"math/rand/v2"
)

// randomRoller implements Roller with uniformly distributed rolls
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 || count > MaxDiceCount {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 || sides > MaxDiceSides {
		return nil, errors.New("invalid dice size")
	}

	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = rand.IntN(sides) + 1
	}

	return NewRollResult(rolls, sides, bonus), nil
}
