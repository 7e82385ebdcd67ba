// Package player simulates a background audio player. Tracks "play" for
// their duration on a timer, and the end of each track is published to
// subscribers like a real player would.
package player

import (
	"errors"
	"time"

	"github.com/llehouerou/tracknav/internal/library"
	"github.com/llehouerou/tracknav/internal/playback"
)

// ErrClosed is returned by Play after Close.
var ErrClosed = errors.New("player closed")

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Play(track library.Track) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	Position() time.Duration
	Subscribe() *playback.Subscription
	Close()
}

// Verify Clock implements Interface at compile time.
var _ Interface = (*Clock)(nil)
