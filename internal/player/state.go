package player

import "github.com/llehouerou/tracknav/internal/playback"

// State is the player's state machine:
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │◀─┐
//	└──────────┘                 └──────────┘  │
//	     ▲                     end │ │ pause   │ resume
//	     │ stop                    │ ▼         │
//	     │                  ┌──────────┐       │
//	     └──────────────────│  Paused  │───────┘
//	                        └──────────┘
//
// Toggle() cycles Playing ↔ Paused and is a no-op while Stopped. Play()
// from any state restarts on the new track.
type State = playback.State

const (
	Stopped = playback.StateStopped
	Playing = playback.StatePlaying
	Paused  = playback.StatePaused
)
