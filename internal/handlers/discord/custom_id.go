package discord

import (
	"strconv"
	"strings"
)

// customIDPrefix scopes every component this bot renders
const customIDPrefix = "aegis"

// Actions shared by slash commands and buttons
const (
	actionSheet     = "sheet"
	actionLog       = "log"
	actionAttack    = "attack"
	actionCast      = "cast"
	actionHitDie    = "hitdie"
	actionRest      = "rest"
	actionSpend     = "spend"
	actionRestore   = "restore"
	actionSlot      = "slot"
	actionRecover   = "recover"
	actionCondition = "condition"
	actionItem      = "item"
	actionHP        = "hp"
	actionChat      = "chat"
	actionSave      = "save"
	actionLoad      = "load"
	actionExport    = "export"
	actionSpellInfo = "spell-info"
)

// request is one user intent, whatever surface it came from
type request struct {
	Action string
	Arg    string
	Amount int
}

// readOnly reports whether the action leaves the sheet alone
func (r request) readOnly() bool {
	switch r.Action {
	case actionSheet, actionLog, actionExport, actionSpellInfo:
		return true
	}
	return false
}

// buildCustomID renders "aegis:<action>[:<arg>[:<amount>]]"
func buildCustomID(action string, args ...string) string {
	return strings.Join(append([]string{customIDPrefix, action}, args...), ":")
}

// parseCustomID reverses buildCustomID. Select menus carry their argument in values.
func parseCustomID(customID string, values []string) (request, bool) {
	parts := strings.SplitN(customID, ":", 4)
	if len(parts) < 2 || parts[0] != customIDPrefix || parts[1] == "" {
		return request{}, false
	}

	req := request{Action: parts[1]}
	if len(parts) >= 3 {
		req.Arg = parts[2]
	}
	if len(parts) == 4 {
		amount, err := strconv.Atoi(parts[3])
		if err != nil {
			return request{}, false
		}
		req.Amount = amount
	}
	if req.Arg == "" && len(values) > 0 {
		req.Arg = values[0]
	}

	return req, true
}
