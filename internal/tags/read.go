package tags

import (
	"os"

	"github.com/dhowden/tag"
)

// Read reads tag metadata from a music file. A missing title falls back to
// the file name.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	title := m.Title()
	if title == "" {
		title = TitleFromPath(path)
	}
	track, _ := m.Track()

	return &Tag{
		Path:        path,
		Title:       title,
		Artist:      m.Artist(),
		Album:       m.Album(),
		TrackNumber: track,
	}, nil
}

// ReadOrFallback reads path's tags, or returns a tag carrying only the file
// name as title when the file has none.
func ReadOrFallback(path string) *Tag {
	t, err := Read(path)
	if err != nil {
		return &Tag{Path: path, Title: TitleFromPath(path)}
	}
	return t
}
