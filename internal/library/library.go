// Package library stores playlists and their tracks in a SQLite catalog and
// imports them from directories of music files.
package library

import (
	"errors"
	"time"
)

var (
	// ErrNoCatalog is returned when no catalog path is configured.
	ErrNoCatalog = errors.New("no catalog configured")
	// ErrTrackNotFound is returned when a playlist has no track at the
	// requested position.
	ErrTrackNotFound = errors.New("track not found")
)

// Playlist is a named, ordered collection of tracks.
type Playlist struct {
	ID         int64
	Index      int // position among all playlists
	Name       string
	TrackCount int
}

func (p Playlist) String() string {
	return p.Name
}

// Track is one playable entry of a playlist. PlaylistIndex and Position
// locate it, so playback can continue with the following track.
type Track struct {
	ID            int64
	PlaylistIndex int
	Position      int
	Path          string
	Title         string
	Artist        string
	Album         string
	Duration      time.Duration // zero when unknown
}

func (t Track) String() string {
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// ScannedPlaylist is a playlist found on disk, ready to be stored.
type ScannedPlaylist struct {
	Name   string
	Tracks []Track
}
