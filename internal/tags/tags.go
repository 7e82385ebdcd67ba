// Package tags reads the metadata of music files.
package tags

import (
	"path/filepath"
	"strings"
)

// File extensions recognized as music.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtM4A  = ".m4a"
)

// Tag holds the metadata of one music file.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	TrackNumber int
}

// IsMusicFile reports whether path has a music file extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtOPUS, ExtOGG, ExtM4A:
		return true
	}
	return false
}

// TitleFromPath returns the file name of path without its extension.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
