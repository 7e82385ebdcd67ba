// internal/app/loop.go
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/llehouerou/tracknav/internal/keymap"
	"github.com/llehouerou/tracknav/internal/library"
	"github.com/llehouerou/tracknav/internal/logging"
	"github.com/llehouerou/tracknav/internal/navigator"
	"github.com/llehouerou/tracknav/internal/playback"
	"github.com/llehouerou/tracknav/internal/ui/screen"
)

// DefaultPollTimeout bounds how long a step waits for a key.
const DefaultPollTimeout = 100 * time.Millisecond

// Options tune the loop.
type Options struct {
	PollTimeout time.Duration
	Logger      *slog.Logger
}

// Loop owns the State and drives it from notifications and keys.
type Loop struct {
	State *State

	session  Session
	notifier Notifier
	keys     KeySource
	surface  screen.Surface
	timeout  time.Duration
	log      *slog.Logger

	width, height int
}

// New builds a loop whose root view lists the session's playlists.
func New(session Session, notifier Notifier, keys KeySource, surface screen.Surface, opts Options) (*Loop, error) {
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = DefaultPollTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	playlists, err := session.Playlists()
	if err != nil {
		return nil, err
	}

	l := &Loop{
		session:  session,
		notifier: notifier,
		keys:     keys,
		surface:  surface,
		timeout:  opts.PollTimeout,
		log:      opts.Logger,
		width:    surface.Width(),
		height:   surface.Height(),
	}
	h, w := l.listSize()
	l.State = NewState(navigator.NewPlaylistsView(playlists, h, w))
	return l, nil
}

// listSize is the viewport of every list: the screen minus the status and
// command lines.
func (l *Loop) listSize() (height, width int) {
	return max(l.height-2, 0), l.width
}

// Next returns the action for this iteration. A pending end-of-track
// notification wins over the keyboard.
func (l *Loop) Next() keymap.Action {
	if l.notifier != nil {
		if ev, ok := l.notifier.TryNext(); ok {
			if ended, ok := ev.(playback.TrackEnded); ok && l.isCurrent(ended.Track) {
				return keymap.Act(keymap.ActionPlayNextTrack)
			}
			return keymap.Act(keymap.ActionNoop)
		}
	}

	k, ok := l.keys.PollKey(l.timeout)
	if !ok {
		return keymap.Act(keymap.ActionNoop)
	}
	return l.handleKey(k)
}

// isCurrent reports whether t is the track now playing. An end notification
// for any other track was overtaken by a newer Play and is stale.
func (l *Loop) isCurrent(t library.Track) bool {
	np := l.State.NowPlaying
	return np != nil && np.Track.ID == t.ID
}

// handleKey feeds k to the parser and keeps the live filter in step with the
// argument being typed.
func (l *Loop) handleKey(k keymap.Key) keymap.Action {
	p := l.State.Parser
	r := p.Handle(k)

	if p.Mode() == keymap.ArgumentFilter {
		l.startLiveFilter()
		l.State.Stack.Top().List().SetFilter(p.Argument())
	} else if l.State.live.active {
		l.stopLiveFilter(r)
	}

	if !r.Resolved() {
		return keymap.Act(keymap.ActionNoop)
	}
	return r.Action
}

func (l *Loop) startLiveFilter() {
	if l.State.live.active {
		return
	}
	saved, had := l.State.Stack.Top().List().Filter()
	l.State.live = liveFilter{active: true, saved: saved, hadFilter: had}
}

// stopLiveFilter ends live filtering. A confirmed filter is applied by the
// FilterList action; anything else restores the previous filter.
func (l *Loop) stopLiveFilter(r keymap.Result) {
	live := l.State.live
	l.State.live = liveFilter{}
	if r.Resolved() && r.Action.Type == keymap.ActionFilterList {
		return
	}
	list := l.State.Stack.Top().List()
	if live.hadFilter {
		list.SetFilter(live.saved)
	} else {
		list.ClearFilter()
	}
}

// Step runs one iteration and reports whether the loop should stop.
func (l *Loop) Step() bool {
	a := l.Next()
	quit := l.Apply(a)
	if !quit {
		l.Render()
	}
	return quit
}

// Run renders the first frame and steps until Quit or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("loop started", "poll_timeout", l.timeout)
	l.Render()
	for {
		select {
		case <-ctx.Done():
			l.log.Info("loop cancelled")
			return ctx.Err()
		default:
		}
		if l.Step() {
			l.log.Info("loop quit")
			return nil
		}
	}
}
