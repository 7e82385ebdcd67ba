// Package keymap turns key presses into actions through a vim-style command
// parser.
package keymap

// ActionType identifies a user intent.
type ActionType string

const (
	ActionSelect         ActionType = "select"
	ActionPlayNextTrack  ActionType = "play_next_track"
	ActionQueueTrack     ActionType = "queue_track"
	ActionTogglePlayback ActionType = "toggle_playback"
	ActionMoveUp         ActionType = "move_up"
	ActionMoveDown       ActionType = "move_down"
	ActionMoveTop        ActionType = "move_top"
	ActionMoveBottom     ActionType = "move_bottom"
	ActionBack           ActionType = "back"
	ActionQuit           ActionType = "quit"
	ActionFilterList     ActionType = "filter_list"  // carries the filter text
	ActionSearchTrack    ActionType = "search_track" // carries the query
	ActionNoop           ActionType = "noop"
)

// Action is a resolved intent. Argument is only set for ActionFilterList and
// ActionSearchTrack.
type Action struct {
	Type     ActionType
	Argument string
}

// Act returns an argument-less action of type t.
func Act(t ActionType) Action {
	return Action{Type: t}
}

// FilterList returns the action applying text as the current list filter.
func FilterList(text string) Action {
	return Action{Type: ActionFilterList, Argument: text}
}

// SearchTrack returns the action searching every track for query.
func SearchTrack(query string) Action {
	return Action{Type: ActionSearchTrack, Argument: query}
}

func (a Action) String() string {
	if a.Argument == "" && a.Type != ActionFilterList && a.Type != ActionSearchTrack {
		return string(a.Type)
	}
	return string(a.Type) + "(" + a.Argument + ")"
}
