package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/llehouerou/tracknav/internal/tags"
)

// Scan walks the given root directories. Every directory holding music files
// becomes one playlist, named after its path relative to the root (or the
// root's own name for files directly inside it). Playlists are ordered by
// name, tracks by file name.
func Scan(ctx context.Context, roots []string) ([]ScannedPlaylist, error) {
	byDir := make(map[string][]string)
	names := make(map[string]string)

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("scan %s: not a directory", root)
		}

		err = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Skip unreadable entries and keep scanning the rest.
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() || !tags.IsMusicFile(path) {
				return nil
			}
			dir := filepath.Dir(path)
			if _, ok := names[dir]; !ok {
				names[dir] = playlistName(root, dir)
			}
			byDir[dir] = append(byDir[dir], path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Slice(dirs, func(i, j int) bool {
		if names[dirs[i]] != names[dirs[j]] {
			return names[dirs[i]] < names[dirs[j]]
		}
		return dirs[i] < dirs[j]
	})

	playlists := make([]ScannedPlaylist, 0, len(dirs))
	for _, dir := range dirs {
		files := byDir[dir]
		sort.Strings(files)

		p := ScannedPlaylist{Name: names[dir], Tracks: make([]Track, 0, len(files))}
		for _, path := range files {
			t := tags.ReadOrFallback(path)
			p.Tracks = append(p.Tracks, Track{
				Path:   path,
				Title:  t.Title,
				Artist: t.Artist,
				Album:  t.Album,
			})
		}
		playlists = append(playlists, p)
	}
	return playlists, nil
}

// playlistName returns dir relative to root, or the root's base name for the
// root itself.
func playlistName(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return filepath.Base(filepath.Clean(root))
	}
	return filepath.ToSlash(rel)
}
