package library

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "nested", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func sample() []ScannedPlaylist {
	return []ScannedPlaylist{
		{Name: "Morning", Tracks: []Track{
			{Path: "/m/1.mp3", Title: "Sunrise", Artist: "Aurora", Album: "Dawn", Duration: 3 * time.Minute},
			{Path: "/m/2.mp3", Title: "Coffee"},
		}},
		{Name: "Empty"},
		{Name: "Night", Tracks: []Track{
			{Path: "/n/1.flac", Title: "Moon", Artist: "Luna"},
		}},
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.ErrorIs(t, err, ErrNoCatalog)
}

func TestCatalog_RoundTrip(t *testing.T) {
	c := openTestCatalog(t)
	require.NoError(t, c.Replace(context.Background(), sample()))

	playlists, err := c.Playlists()
	require.NoError(t, err)
	require.Len(t, playlists, 3)
	assert.Equal(t, "Morning", playlists[0].Name)
	assert.Equal(t, 0, playlists[0].Index)
	assert.Equal(t, 2, playlists[0].TrackCount)
	assert.Equal(t, 0, playlists[1].TrackCount)
	assert.Equal(t, 2, playlists[2].Index)

	tracks, err := c.Tracks(0)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Aurora - Sunrise", tracks[0].String())
	assert.Equal(t, "Dawn", tracks[0].Album)
	assert.Equal(t, 3*time.Minute, tracks[0].Duration)
	assert.Equal(t, "Coffee", tracks[1].String())
	assert.Equal(t, 1, tracks[1].Position)
	assert.Zero(t, tracks[1].Duration)

	empty, err := c.Tracks(1)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCatalog_Track(t *testing.T) {
	c := openTestCatalog(t)
	require.NoError(t, c.Replace(context.Background(), sample()))

	tr, err := c.Track(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "Moon", tr.Title)
	assert.Equal(t, 2, tr.PlaylistIndex)
	assert.Equal(t, 0, tr.Position)

	_, err = c.Track(2, 1)
	assert.True(t, errors.Is(err, ErrTrackNotFound))
	_, err = c.Track(9, 0)
	assert.ErrorIs(t, err, ErrTrackNotFound)
}

func TestCatalog_AllTracks(t *testing.T) {
	c := openTestCatalog(t)
	require.NoError(t, c.Replace(context.Background(), sample()))

	all, err := c.AllTracks()
	require.NoError(t, err)
	titles := make([]string, len(all))
	for i, tr := range all {
		titles[i] = tr.Title
	}
	assert.Equal(t, []string{"Sunrise", "Coffee", "Moon"}, titles)
	assert.Equal(t, 2, all[2].PlaylistIndex)
}

func TestCatalog_ReplaceOverwrites(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()
	require.NoError(t, c.Replace(ctx, sample()))
	require.NoError(t, c.Replace(ctx, []ScannedPlaylist{{Name: "Only", Tracks: []Track{{Path: "/x", Title: "X"}}}}))

	playlists, err := c.Playlists()
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Equal(t, "Only", playlists[0].Name)

	all, err := c.AllTracks()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCatalog_ReplaceCanceledKeepsContent(t *testing.T) {
	c := openTestCatalog(t)
	require.NoError(t, c.Replace(context.Background(), sample()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, c.Replace(ctx, nil))

	playlists, err := c.Playlists()
	require.NoError(t, err)
	assert.Len(t, playlists, 3)
}

func TestCatalog_ReopenKeepsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, c.Replace(context.Background(), sample()))
	require.NoError(t, c.Close())

	c, err = Open(path)
	require.NoError(t, err)
	defer c.Close()
	playlists, err := c.Playlists()
	require.NoError(t, err)
	assert.Len(t, playlists, 3)
}

func TestTrack_String(t *testing.T) {
	assert.Equal(t, "A - T", Track{Artist: "A", Title: "T"}.String())
	assert.Equal(t, "T", Track{Title: "T"}.String())
	assert.Equal(t, "Mix", Playlist{Name: "Mix"}.String())
}
