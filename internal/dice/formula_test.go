package dice_test

import (
	"testing"

	"github.com/KirkDiggler/aegis-tracker/internal/dice"
	mockdice "github.com/KirkDiggler/aegis-tracker/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		input   string
		want    dice.Formula
		wantErr bool
	}{
		{input: "1d8 + 2", want: dice.Formula{Count: 1, Sides: 8, Modifier: 2}},
		{input: "1d6+2", want: dice.Formula{Count: 1, Sides: 6, Modifier: 2}},
		{input: "  2d10 +  4 ", want: dice.Formula{Count: 2, Sides: 10, Modifier: 4}},
		{input: "1d8", wantErr: true},
		{input: "1d8 - 1", wantErr: true},
		{input: "d8 + 2", wantErr: true},
		{input: "0d8 + 2", wantErr: true},
		{input: "1d0 + 2", wantErr: true},
		{input: "100d1000 + 1000", want: dice.Formula{Count: 100, Sides: 1000, Modifier: 1000}},
		{input: "2000000000d6 + 2", wantErr: true},
		{input: "101d6 + 2", wantErr: true},
		{input: "1d1001 + 0", wantErr: true},
		{input: "1d8 + 1001", wantErr: true},
		{input: "99999999999999999999d6 + 2", wantErr: true},
		{input: "fireball", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := dice.ParseFormula(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormula_Roll(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{3, 5})

	result, err := dice.Formula{Count: 2, Sides: 6, Modifier: 1}.Roll(roller)
	require.NoError(t, err)
	assert.Equal(t, 9, result.Total)
	assert.Equal(t, "2d6 + 1", dice.Formula{Count: 2, Sides: 6, Modifier: 1}.String())
}
