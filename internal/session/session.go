// Package session binds the catalog and the player behind the handle the
// interaction loop drives.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/llehouerou/tracknav/internal/library"
	"github.com/llehouerou/tracknav/internal/playback"
	"github.com/llehouerou/tracknav/internal/player"
)

// ErrNotPlaying is returned when pausing or resuming with nothing loaded.
var ErrNotPlaying = errors.New("nothing is playing")

// Credentials identify the user to the session. They are opaque here.
type Credentials struct {
	Username string
	Password string
}

// Catalog is the read side of the playlist store.
type Catalog interface {
	Playlists() ([]library.Playlist, error)
	Tracks(playlistIndex int) ([]library.Track, error)
	Track(playlistIndex, n int) (library.Track, error)
	AllTracks() ([]library.Track, error)
}

// Local is a session over a local catalog and the simulated player.
type Local struct {
	catalog Catalog
	player  player.Interface
	log     *slog.Logger
}

// New creates a session. A nil catalog yields ErrNoCatalog from every
// catalog query.
func New(catalog Catalog, p player.Interface, creds Credentials, log *slog.Logger) *Local {
	log.Info("session started", "user", creds.Username)
	return &Local{catalog: catalog, player: p, log: log}
}

// Subscribe returns the player's notification channel.
func (s *Local) Subscribe() *playback.Subscription {
	return s.player.Subscribe()
}

func (s *Local) Playlists() ([]library.Playlist, error) {
	if s.catalog == nil {
		return nil, library.ErrNoCatalog
	}
	return s.catalog.Playlists()
}

func (s *Local) Tracks(playlist library.Playlist) ([]library.Track, error) {
	if s.catalog == nil {
		return nil, library.ErrNoCatalog
	}
	tracks, err := s.catalog.Tracks(playlist.Index)
	if err != nil {
		return nil, fmt.Errorf("tracks of %q: %w", playlist.Name, err)
	}
	return tracks, nil
}

// Track returns the n-th track of a playlist, reporting false past its end.
func (s *Local) Track(playlistIndex, n int) (library.Track, bool, error) {
	if s.catalog == nil {
		return library.Track{}, false, library.ErrNoCatalog
	}
	if n < 0 {
		return library.Track{}, false, nil
	}
	t, err := s.catalog.Track(playlistIndex, n)
	if errors.Is(err, library.ErrTrackNotFound) {
		return library.Track{}, false, nil
	}
	if err != nil {
		return library.Track{}, false, err
	}
	return t, true, nil
}

func (s *Local) AllTracks() ([]library.Track, error) {
	if s.catalog == nil {
		return nil, library.ErrNoCatalog
	}
	return s.catalog.AllTracks()
}

// Play starts track immediately.
func (s *Local) Play(track library.Track) error {
	if err := s.player.Play(track); err != nil {
		return fmt.Errorf("play %q: %w", track.String(), err)
	}
	s.log.Debug("playing", "track", track.String(), "path", track.Path)
	return nil
}

// TogglePause pauses or resumes the current track.
func (s *Local) TogglePause() error {
	if !s.player.State().IsActive() {
		return ErrNotPlaying
	}
	s.player.Toggle()
	return nil
}

// IsPlaying reports whether a track is playing (not paused).
func (s *Local) IsPlaying() bool {
	return s.player.State() == player.Playing
}

// Position returns how far into the current track playback is.
func (s *Local) Position() time.Duration {
	return s.player.Position()
}
