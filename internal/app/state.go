package app

import (
	"github.com/llehouerou/tracknav/internal/keymap"
	"github.com/llehouerou/tracknav/internal/navigator"
	"github.com/llehouerou/tracknav/internal/playlist"
)

// State is everything the loop mutates between polling and rendering.
type State struct {
	Stack      *navigator.Stack
	Queue      *playlist.Queue
	NowPlaying *playlist.NowPlaying // nil when nothing plays
	Parser     *keymap.Parser
	Message    string // shown on the command line when nothing is being typed

	live liveFilter
}

// liveFilter remembers the top list's filter from before "/" so that a
// cancelled argument can put it back.
type liveFilter struct {
	active    bool
	saved     string
	hadFilter bool
}

// NewState creates the state for a session starting on root.
func NewState(root navigator.View) *State {
	return &State{
		Stack:  navigator.NewStack(root),
		Queue:  playlist.NewQueue(),
		Parser: keymap.NewParser(),
	}
}

// Playing records track as now playing.
func (s *State) Playing(np playlist.NowPlaying) {
	s.NowPlaying = &np
}

// Stopped clears the now-playing context.
func (s *State) Stopped() {
	s.NowPlaying = nil
}
