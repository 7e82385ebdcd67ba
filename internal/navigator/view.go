// Package navigator holds the stack of views the user drills through.
package navigator

import (
	"github.com/llehouerou/tracknav/internal/library"
	"github.com/llehouerou/tracknav/internal/ui/list"
)

// Kind tags a view variant.
type Kind int

const (
	KindPlaylists Kind = iota
	KindTracks
	KindSearch
)

func (k Kind) String() string {
	switch k {
	case KindPlaylists:
		return "playlists"
	case KindTracks:
		return "tracks"
	case KindSearch:
		return "search"
	default:
		return "unknown"
	}
}

// View is one navigable screen. Each view owns exactly one list.
type View interface {
	Kind() Kind
	Title() string
	List() list.Navigator
	// IsLeaf reports whether the items are directly playable.
	IsLeaf() bool
}

// TrackList is implemented by leaf views.
type TrackList interface {
	View
	SelectedTrack() (library.Track, bool)
}

// PlaylistsView lists every playlist of the catalog.
type PlaylistsView struct {
	list *list.Model[library.Playlist]
}

func NewPlaylistsView(playlists []library.Playlist, height, width int) *PlaylistsView {
	return &PlaylistsView{list: list.New(playlists, height, width)}
}

func (v *PlaylistsView) Kind() Kind           { return KindPlaylists }
func (v *PlaylistsView) Title() string        { return "Playlists" }
func (v *PlaylistsView) List() list.Navigator { return v.list }
func (v *PlaylistsView) IsLeaf() bool         { return false }

// SelectedPlaylist returns the playlist under the cursor, if any matches.
func (v *PlaylistsView) SelectedPlaylist() (library.Playlist, bool) {
	if v.list.IsEmpty() {
		return library.Playlist{}, false
	}
	return v.list.SelectedItem(), true
}

// TracksView lists the tracks of the playlist it was drilled into from.
type TracksView struct {
	Playlist library.Playlist
	list     *list.Model[library.Track]
}

func NewTracksView(playlist library.Playlist, tracks []library.Track, height, width int) *TracksView {
	return &TracksView{Playlist: playlist, list: list.New(tracks, height, width)}
}

func (v *TracksView) Kind() Kind           { return KindTracks }
func (v *TracksView) Title() string        { return v.Playlist.Name }
func (v *TracksView) List() list.Navigator { return v.list }
func (v *TracksView) IsLeaf() bool         { return true }

func (v *TracksView) SelectedTrack() (library.Track, bool) {
	return selectedTrack(v.list)
}

// SearchView lists tracks from every playlist, narrowed by a query.
type SearchView struct {
	Query string
	list  *list.Model[library.Track]
}

func NewSearchView(query string, tracks []library.Track, height, width int) *SearchView {
	return &SearchView{Query: query, list: list.New(tracks, height, width)}
}

func (v *SearchView) Kind() Kind           { return KindSearch }
func (v *SearchView) Title() string        { return "Search: " + v.Query }
func (v *SearchView) List() list.Navigator { return v.list }
func (v *SearchView) IsLeaf() bool         { return true }

func (v *SearchView) SelectedTrack() (library.Track, bool) {
	return selectedTrack(v.list)
}

func selectedTrack(l *list.Model[library.Track]) (library.Track, bool) {
	if l.IsEmpty() {
		return library.Track{}, false
	}
	return l.SelectedItem(), true
}

var (
	_ View      = (*PlaylistsView)(nil)
	_ TrackList = (*TracksView)(nil)
	_ TrackList = (*SearchView)(nil)
)
