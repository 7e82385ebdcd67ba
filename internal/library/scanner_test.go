package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestScan_GroupsByDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "music")
	touch(t, filepath.Join(root, "loose.mp3"))
	touch(t, filepath.Join(root, "Rock", "b-side.flac"))
	touch(t, filepath.Join(root, "Rock", "a-side.mp3"))
	touch(t, filepath.Join(root, "Rock", "cover.jpg"))
	touch(t, filepath.Join(root, "Jazz", "Live", "set.ogg"))
	touch(t, filepath.Join(root, "Empty", "notes.txt"))

	playlists, err := Scan(context.Background(), []string{root})
	require.NoError(t, err)

	names := make([]string, len(playlists))
	for i, p := range playlists {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Jazz/Live", "Rock", "music"}, names)

	rock := playlists[1]
	require.Len(t, rock.Tracks, 2)
	// Untagged files fall back to their file name.
	assert.Equal(t, "a-side", rock.Tracks[0].Title)
	assert.Equal(t, "b-side", rock.Tracks[1].Title)
	assert.Equal(t, filepath.Join(root, "Rock", "a-side.mp3"), rock.Tracks[0].Path)
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(context.Background(), []string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestScan_RootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	touch(t, path)
	_, err := Scan(context.Background(), []string{path})
	assert.ErrorContains(t, err, "not a directory")
}

func TestScan_Canceled(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.mp3"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, []string{root})
	assert.ErrorIs(t, err, context.Canceled)
}
