// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpCatalogOpen    Op = "open catalog"
	OpCatalogImport  Op = "import playlists"
	OpPlaylistsLoad  Op = "load playlists"
	OpTracksLoad     Op = "load tracks"
	OpSearchLoad     Op = "load tracks for search"
	OpNextTrackFetch Op = "find next track"

	// Playback operations
	OpPlaybackStart  Op = "start playback"
	OpPlaybackToggle Op = "pause or resume playback"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
