// Package playlist holds the play queue and the now-playing context.
package playlist

import "github.com/llehouerou/tracknav/internal/library"

// Queue is a FIFO of tracks waiting to be played before sequential playback
// resumes.
type Queue struct {
	tracks []library.Track
}

// NewQueue creates a new empty queue.
func NewQueue() *Queue {
	return &Queue{tracks: make([]library.Track, 0)}
}

// Add appends tracks to the end of the queue.
func (q *Queue) Add(tracks ...library.Track) {
	q.tracks = append(q.tracks, tracks...)
}

// Pop removes and returns the oldest queued track.
func (q *Queue) Pop() (library.Track, bool) {
	if len(q.tracks) == 0 {
		return library.Track{}, false
	}
	t := q.tracks[0]
	q.tracks = q.tracks[1:]
	return t, true
}

// Len returns the number of queued tracks.
func (q *Queue) Len() int {
	return len(q.tracks)
}

// NowPlaying is the track being played and where it came from.
type NowPlaying struct {
	Track     library.Track
	FromQueue bool
}

// Next returns the playlist index and position of the track that follows in
// the same playlist.
func (n NowPlaying) Next() (playlistIndex, position int) {
	return n.Track.PlaylistIndex, n.Track.Position + 1
}
