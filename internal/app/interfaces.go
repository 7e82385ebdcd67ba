// Package app runs the interaction loop: it merges player notifications and
// key presses into actions and applies them to the view stack and playback.
package app

import (
	"time"

	"github.com/llehouerou/tracknav/internal/keymap"
	"github.com/llehouerou/tracknav/internal/library"
	"github.com/llehouerou/tracknav/internal/playback"
)

// Session provides the playlists and drives playback.
type Session interface {
	Playlists() ([]library.Playlist, error)
	Tracks(playlist library.Playlist) ([]library.Track, error)
	// Track returns the n-th track of a playlist; false past its end.
	Track(playlistIndex, n int) (library.Track, bool, error)
	AllTracks() ([]library.Track, error)
	Play(track library.Track) error
	TogglePause() error
	IsPlaying() bool
	// Position is how far into the current track playback is.
	Position() time.Duration
}

// Notifier yields pending player notifications without blocking.
type Notifier interface {
	TryNext() (playback.Event, bool)
}

// KeySource waits at most timeout for the next key press.
type KeySource interface {
	PollKey(timeout time.Duration) (keymap.Key, bool)
}
