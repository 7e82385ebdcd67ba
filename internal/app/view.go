// internal/app/view.go
package app

import (
	"fmt"

	"github.com/llehouerou/tracknav/internal/keymap"
	"github.com/llehouerou/tracknav/internal/ui/render"
	"github.com/llehouerou/tracknav/internal/ui/screen"
)

// Render draws the top view, the status line and the command line, then
// presents the frame.
func (l *Loop) Render() {
	s := l.surface
	if s.Width() != l.width || s.Height() != l.height {
		l.width, l.height = s.Width(), s.Height()
		h, w := l.listSize()
		l.State.Stack.Resize(h, w)
	}

	s.Clear()
	if l.height >= 2 {
		l.State.Stack.Top().List().Render(s, 0, 0, l.State.live.active)
		s.Print(0, l.height-2, screen.Status, render.TruncateAndPad(l.StatusLine(), l.width))
	}
	if l.height >= 1 {
		s.Print(0, l.height-1, screen.Normal, render.TruncateAndPad(l.CommandLine(), l.width))
	}
	s.Present()
}

// StatusLine describes the track being played.
func (l *Loop) StatusLine() string {
	np := l.State.NowPlaying
	if np == nil {
		return "Playback: -"
	}
	line := fmt.Sprintf("Playback: %s [%s]", np.Track.String(), render.Duration(np.Track.Duration))
	if !l.session.IsPlaying() {
		line += fmt.Sprintf(" (paused at %s)", render.Duration(l.session.Position()))
	}
	if n := l.State.Queue.Len(); n > 0 {
		line += fmt.Sprintf(" +%d queued", n)
	}
	return line
}

// CommandLine echoes the argument or key sequence being typed, and the last
// message otherwise.
func (l *Loop) CommandLine() string {
	p := l.State.Parser
	switch p.Mode() {
	case keymap.ArgumentFilter:
		return "Filter: " + p.Argument()
	case keymap.ArgumentSearch:
		return "Search: " + p.Argument()
	case keymap.ArgumentNone:
	}
	if seq := p.Sequence(); seq != "" {
		return seq
	}
	if l.State.Message != "" {
		return l.State.Message
	}
	return keymap.Help()
}
