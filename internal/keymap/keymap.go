package keymap

import (
	"strings"
)

// Binding maps a key sequence to an action.
type Binding struct {
	Keys        string
	Action      ActionType
	Description string
}

// Commands is the ordered command table consulted in sequence mode. Earlier
// entries win on duplicate key sequences.
var Commands = []Binding{
	{"gg", ActionMoveTop, "top"},
	{"j", ActionMoveDown, "down"},
	{"k", ActionMoveUp, "up"},
	{"G", ActionMoveBottom, "bottom"},
	{"q", ActionQueueTrack, "queue"},
	{"e", ActionQuit, "exit"},
	{" ", ActionTogglePlayback, "pause"},
	{">", ActionPlayNextTrack, "next"},
}

// Trigger keys that open an argument instead of matching the table.
const (
	FilterKey = '/'
	SearchKey = 's'
)

// Help renders a one-line summary of the command table and argument keys.
func Help() string {
	parts := make([]string, 0, len(Commands)+2)
	for _, b := range Commands {
		parts = append(parts, keyLabel(b.Keys)+" "+b.Description)
	}
	parts = append(parts, string(FilterKey)+" filter", string(SearchKey)+" search")
	return strings.Join(parts, "  ")
}

func keyLabel(keys string) string {
	if keys == " " {
		return "space"
	}
	return keys
}

// match looks sequence up in table. An exact match resolves; a strict prefix
// of some entry is incomplete; anything else is no match.
func match(table []Binding, sequence string) Result {
	prefix := false
	for _, b := range table {
		if b.Keys == sequence {
			return Result{Kind: ResultAction, Action: Act(b.Action)}
		}
		if strings.HasPrefix(b.Keys, sequence) {
			prefix = true
		}
	}
	if prefix {
		return Result{Kind: ResultIncomplete}
	}
	return Result{Kind: ResultNoMatch}
}
