package player

import (
	"time"

	"github.com/llehouerou/tracknav/internal/library"
	"github.com/llehouerou/tracknav/internal/playback"
)

// Mock is a test double for Clock.
type Mock struct {
	state     State
	track     library.Track
	position  time.Duration
	playErr   error
	playCalls []library.Track
	subs      []*playback.Subscription
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped}
}

func (m *Mock) Play(track library.Track) error {
	m.playCalls = append(m.playCalls, track)
	if m.playErr != nil {
		return m.playErr
	}
	m.track = track
	m.state = Playing
	return nil
}

func (m *Mock) Stop() { m.state = Stopped }

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	switch m.state {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Subscribe() *playback.Subscription {
	sub := playback.NewSubscription()
	m.subs = append(m.subs, sub)
	return sub
}

func (m *Mock) Close() {
	for _, sub := range m.subs {
		sub.Close()
	}
	m.subs = nil
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []library.Track { return m.playCalls }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateFinished ends the current track as if it had played out.
func (m *Mock) SimulateFinished() {
	m.state = Stopped
	for _, sub := range m.subs {
		sub.Send(playback.TrackEnded{Track: m.track})
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
