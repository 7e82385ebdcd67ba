package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tracknav/internal/library"
)

func TestViews(t *testing.T) {
	pl := library.Playlist{Name: "Road trip"}
	tests := []struct {
		view   View
		kind   Kind
		title  string
		isLeaf bool
	}{
		{NewPlaylistsView(playlists("a"), 5, 10), KindPlaylists, "Playlists", false},
		{NewTracksView(pl, tracks("x"), 5, 10), KindTracks, "Road trip", true},
		{NewSearchView("moon", tracks("x"), 5, 10), KindSearch, "Search: moon", true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.view.Kind())
			assert.Equal(t, tt.title, tt.view.Title())
			assert.Equal(t, tt.isLeaf, tt.view.IsLeaf())
			_, isTrackList := tt.view.(TrackList)
			assert.Equal(t, tt.isLeaf, isTrackList)
		})
	}
}

func TestPlaylistsView_SelectedPlaylist(t *testing.T) {
	v := NewPlaylistsView(playlists("a", "b", "c"), 5, 10)
	v.List().MoveDown()
	p, ok := v.SelectedPlaylist()
	require.True(t, ok)
	assert.Equal(t, "b", p.Name)
	assert.Equal(t, 1, p.Index)

	v.List().SetFilter("zz")
	_, ok = v.SelectedPlaylist()
	assert.False(t, ok)
}

func TestTracksView_SelectedTrack(t *testing.T) {
	v := NewTracksView(library.Playlist{}, tracks("one", "two"), 5, 10)
	v.List().MoveBottom()
	tr, ok := v.SelectedTrack()
	require.True(t, ok)
	assert.Equal(t, "two", tr.Title)

	empty := NewTracksView(library.Playlist{}, nil, 5, 10)
	_, ok = empty.SelectedTrack()
	assert.False(t, ok)
}

func TestSearchView_FiltersAcrossTracks(t *testing.T) {
	v := NewSearchView("o", tracks("one", "two", "three"), 5, 10)
	v.List().SetFilter(v.Query)
	assert.Equal(t, 2, v.List().MatchCount())
	tr, ok := v.SelectedTrack()
	require.True(t, ok)
	assert.Equal(t, "one", tr.Title)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "unknown", Kind(42).String())
}
