package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCustomID(t *testing.T) {
	tests := []struct {
		name     string
		customID string
		values   []string
		want     request
		ok       bool
	}{
		{name: "bare action", customID: "aegis:hitdie", want: request{Action: actionHitDie}, ok: true},
		{name: "with argument", customID: "aegis:attack:Longbow", want: request{Action: actionAttack, Arg: "Longbow"}, ok: true},
		{name: "argument with apostrophe", customID: "aegis:cast:Hunter's Mark", want: request{Action: actionCast, Arg: "Hunter's Mark"}, ok: true},
		{name: "with amount", customID: "aegis:item:arrows:-1", want: request{Action: actionItem, Arg: "arrows", Amount: -1}, ok: true},
		{name: "select menu value", customID: "aegis:condition", values: []string{"Prone"}, want: request{Action: actionCondition, Arg: "Prone"}, ok: true},
		{name: "bad amount", customID: "aegis:item:arrows:lots", ok: false},
		{name: "foreign prefix", customID: "combat:attack:x", ok: false},
		{name: "prefix only", customID: "aegis", ok: false},
		{name: "empty action", customID: "aegis:", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseCustomID(tt.customID, tt.values)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuildCustomID_RoundTrip(t *testing.T) {
	req, ok := parseCustomID(buildCustomID(actionItem, "gold", "25"), nil)
	assert.True(t, ok)
	assert.Equal(t, request{Action: actionItem, Arg: "gold", Amount: 25}, req)
}

func TestRequestReadOnly(t *testing.T) {
	assert.True(t, request{Action: actionSheet}.readOnly())
	assert.True(t, request{Action: actionSpellInfo}.readOnly())
	assert.False(t, request{Action: actionAttack}.readOnly())
	assert.False(t, request{Action: actionChat}.readOnly())
}
