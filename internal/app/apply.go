// internal/app/apply.go
package app

import (
	"github.com/llehouerou/tracknav/internal/errmsg"
	"github.com/llehouerou/tracknav/internal/keymap"
	"github.com/llehouerou/tracknav/internal/library"
	"github.com/llehouerou/tracknav/internal/navigator"
	"github.com/llehouerou/tracknav/internal/playlist"
)

// Apply performs a on the state and reports whether it was Quit.
// Combinations that make no sense for the current view are ignored.
func (l *Loop) Apply(a keymap.Action) bool {
	top := l.State.Stack.Top()
	list := top.List()

	switch a.Type {
	case keymap.ActionQuit:
		return true
	case keymap.ActionSelect:
		l.selectItem(top)
	case keymap.ActionBack:
		l.State.Stack.Back()
	case keymap.ActionMoveUp:
		list.MoveUp()
	case keymap.ActionMoveDown:
		list.MoveDown()
	case keymap.ActionMoveTop:
		list.MoveTop()
	case keymap.ActionMoveBottom:
		list.MoveBottom()
	case keymap.ActionQueueTrack:
		if t, ok := selectedTrack(top); ok {
			l.State.Queue.Add(t)
			l.log.Debug("track queued", "track", t.String(), "queue_len", l.State.Queue.Len())
		}
	case keymap.ActionPlayNextTrack:
		l.playNext()
	case keymap.ActionTogglePlayback:
		if err := l.session.TogglePause(); err != nil {
			l.fail(errmsg.OpPlaybackToggle, "", err)
		}
	case keymap.ActionFilterList:
		list.SetFilter(a.Argument)
	case keymap.ActionSearchTrack:
		l.search(a.Argument)
	case keymap.ActionNoop:
	}
	return false
}

func selectedTrack(v navigator.View) (library.Track, bool) {
	tl, ok := v.(navigator.TrackList)
	if !ok {
		return library.Track{}, false
	}
	return tl.SelectedTrack()
}

func (l *Loop) selectItem(top navigator.View) {
	if top.List().IsEmpty() {
		return
	}
	if top.IsLeaf() {
		if t, ok := selectedTrack(top); ok {
			l.play(playlist.NowPlaying{Track: t})
		}
		return
	}

	pv, ok := top.(*navigator.PlaylistsView)
	if !ok {
		return
	}
	p, ok := pv.SelectedPlaylist()
	if !ok {
		return
	}
	tracks, err := l.session.Tracks(p)
	if err != nil {
		l.fail(errmsg.OpTracksLoad, p.Name, err)
		return
	}
	h, w := l.listSize()
	l.State.Stack.Push(navigator.NewTracksView(p, tracks, h, w))
}

// playNext prefers the queue, then the track after the one playing in its
// playlist. With neither, playback context is cleared.
func (l *Loop) playNext() {
	if t, ok := l.State.Queue.Pop(); ok {
		l.play(playlist.NowPlaying{Track: t, FromQueue: true})
		return
	}

	now := l.State.NowPlaying
	if now == nil {
		return
	}
	idx, pos := now.Next()
	t, ok, err := l.session.Track(idx, pos)
	if err != nil {
		l.fail(errmsg.OpNextTrackFetch, now.Track.String(), err)
		l.State.Stopped()
		return
	}
	if !ok {
		l.log.Info("end of playlist", "playlist_index", idx)
		l.State.Stopped()
		return
	}
	l.play(playlist.NowPlaying{Track: t})
}

func (l *Loop) play(np playlist.NowPlaying) {
	if err := l.session.Play(np.Track); err != nil {
		l.fail(errmsg.OpPlaybackStart, np.Track.String(), err)
		l.State.Stopped()
		return
	}
	l.State.Playing(np)
	l.State.Message = ""
	l.log.Info("playing", "track", np.Track.String(), "from_queue", np.FromQueue)
}

func (l *Loop) search(query string) {
	tracks, err := l.session.AllTracks()
	if err != nil {
		l.fail(errmsg.OpSearchLoad, query, err)
		return
	}
	h, w := l.listSize()
	v := navigator.NewSearchView(query, tracks, h, w)
	l.State.Stack.Push(v)
	v.List().SetFilter(query)
}

// fail records err on the command line and in the log.
func (l *Loop) fail(op errmsg.Op, context string, err error) {
	l.State.Message = errmsg.FormatWith(op, context, err)
	l.log.Error(string(op), "context", context, "err", err)
}
