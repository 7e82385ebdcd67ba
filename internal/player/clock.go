package player

import (
	"sync"
	"time"

	"github.com/llehouerou/tracknav/internal/library"
	"github.com/llehouerou/tracknav/internal/playback"
)

// DefaultTrackLength is used for tracks whose duration is unknown.
const DefaultTrackLength = 3 * time.Minute

// Clock is a player without audio output: a track plays for its duration,
// measured by a timer that survives pauses.
type Clock struct {
	mu            sync.Mutex
	state         State
	track         library.Track
	length        time.Duration
	elapsed       time.Duration // played before the current run
	startedAt     time.Time
	timer         *time.Timer
	generation    uint64 // invalidates timers of replaced tracks
	defaultLength time.Duration
	subs          []*playback.Subscription
	closed        bool
}

// NewClock creates a stopped player. Tracks without a duration play for
// defaultLength; zero means DefaultTrackLength.
func NewClock(defaultLength time.Duration) *Clock {
	if defaultLength <= 0 {
		defaultLength = DefaultTrackLength
	}
	return &Clock{defaultLength: defaultLength}
}

// Subscribe returns a new subscription to the player's events.
func (c *Clock) Subscribe() *playback.Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	sub := playback.NewSubscription()
	if c.closed {
		sub.Close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Play starts track from the beginning, replacing whatever was playing.
func (c *Clock) Play(track library.Track) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.stopTimer()
	c.generation++

	c.track = track
	c.length = track.Duration
	if c.length <= 0 {
		c.length = c.defaultLength
	}
	c.elapsed = 0
	c.publish(playback.TrackStarted{Track: track})
	c.start()
	c.setState(Playing)
	return nil
}

// Stop ends playback without a TrackEnded notification.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimer()
	c.generation++
	c.elapsed = 0
	c.setState(Stopped)
}

func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.CanPause() {
		return
	}
	c.stopTimer()
	c.elapsed += time.Since(c.startedAt)
	c.setState(Paused)
}

func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.CanResume() {
		return
	}
	c.start()
	c.setState(Playing)
}

// Toggle pauses or resumes. It does nothing while stopped.
func (c *Clock) Toggle() {
	switch c.State() {
	case Playing:
		c.Pause()
	case Paused:
		c.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Position returns how far into the current track playback is.
func (c *Clock) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case Playing:
		return min(c.elapsed+time.Since(c.startedAt), c.length)
	case Paused:
		return c.elapsed
	case Stopped:
	}
	return 0
}

// Close stops playback and closes every subscription.
func (c *Clock) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.stopTimer()
	c.generation++
	for _, sub := range c.subs {
		sub.Close()
	}
	c.subs = nil
}

// start arms the end-of-track timer for the remaining length.
func (c *Clock) start() {
	gen := c.generation
	c.startedAt = time.Now()
	c.timer = time.AfterFunc(c.length-c.elapsed, func() {
		c.finish(gen)
	})
}

func (c *Clock) finish(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || c.state != Playing {
		return
	}
	c.timer = nil
	c.elapsed = 0
	c.publish(playback.TrackEnded{Track: c.track})
	c.setState(Stopped)
}

func (c *Clock) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Clock) setState(s State) {
	if s == c.state {
		return
	}
	prev := c.state
	c.state = s
	c.publish(playback.StateChanged{Previous: prev, Current: s})
}

func (c *Clock) publish(e playback.Event) {
	for _, sub := range c.subs {
		sub.Send(e)
	}
}
