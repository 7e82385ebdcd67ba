package playback

import "github.com/llehouerou/tracknav/internal/library"

// Event is a notification published by a player.
type Event interface {
	isEvent()
}

// TrackEnded is emitted when a track plays to its end.
type TrackEnded struct {
	Track library.Track
}

// TrackStarted is emitted when playback of a track begins.
type TrackStarted struct {
	Track library.Track
}

// StateChanged is emitted when the playback state changes.
type StateChanged struct {
	Previous State
	Current  State
}

func (TrackEnded) isEvent()   {}
func (TrackStarted) isEvent() {}
func (StateChanged) isEvent() {}
