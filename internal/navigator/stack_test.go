package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tracknav/internal/library"
)

func playlists(names ...string) []library.Playlist {
	out := make([]library.Playlist, len(names))
	for i, n := range names {
		out[i] = library.Playlist{Index: i, Name: n}
	}
	return out
}

func tracks(titles ...string) []library.Track {
	out := make([]library.Track, len(titles))
	for i, title := range titles {
		out[i] = library.Track{Position: i, Title: title}
	}
	return out
}

func TestNewStack(t *testing.T) {
	s := NewStack(NewPlaylistsView(playlists("a"), 10, 20))
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, KindPlaylists, s.Top().Kind())
	assert.Panics(t, func() { NewStack(nil) })
}

func TestStack_BackAtRootKeepsDepth(t *testing.T) {
	s := NewStack(NewPlaylistsView(playlists("a", "b"), 10, 20))
	assert.Equal(t, BackAtRoot, s.Back())
	assert.Equal(t, 1, s.Depth())
	assert.False(t, s.Pop())
	assert.Equal(t, 1, s.Depth())
}

func TestStack_BackClearsFilterBeforePopping(t *testing.T) {
	s := NewStack(NewPlaylistsView(playlists("a", "b"), 10, 20))
	s.Push(NewTracksView(library.Playlist{Name: "a"}, tracks("x", "y"), 10, 20))
	s.Top().List().SetFilter("x")

	assert.Equal(t, BackClearedFilter, s.Back())
	assert.Equal(t, 2, s.Depth())
	_, ok := s.Top().List().Filter()
	assert.False(t, ok)

	assert.Equal(t, BackPopped, s.Back())
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, KindPlaylists, s.Top().Kind())
}

func TestStack_BackAtRootClearsFilter(t *testing.T) {
	s := NewStack(NewPlaylistsView(playlists("a", "b"), 10, 20))
	s.Top().List().SetFilter("a")
	assert.Equal(t, BackClearedFilter, s.Back())
	assert.Equal(t, BackAtRoot, s.Back())
}

func TestStack_PushResetsFilter(t *testing.T) {
	s := NewStack(NewPlaylistsView(playlists("a", "b"), 10, 20))
	s.Top().List().SetFilter("b")

	v := NewSearchView("q", tracks("x"), 10, 20)
	v.List().SetFilter("zzz")
	s.Push(v)

	_, ok := s.Top().List().Filter()
	assert.False(t, ok, "pushed view starts unfiltered")
	assert.Equal(t, 1, s.Top().List().MatchCount())

	s.Pop()
	f, ok := s.Top().List().Filter()
	require.True(t, ok, "covered view keeps its filter")
	assert.Equal(t, "b", f)
}

func TestStack_Resize(t *testing.T) {
	s := NewStack(NewPlaylistsView(playlists("a", "b", "c", "d"), 10, 20))
	root := s.Top().List()
	root.MoveBottom()
	s.Push(NewTracksView(library.Playlist{}, tracks("x"), 10, 20))

	s.Resize(2, 20)
	s.Pop()
	root.MoveUp()
	root.MoveUp()
	root.MoveUp()
	assert.Equal(t, 0, root.SelectedIndex())
}
