package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/tracknav/internal/db"
)

// Catalog is the SQLite-backed store of playlists.
type Catalog struct {
	db *sql.DB
}

// Open opens (creating if needed) the catalog database at path.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return nil, ErrNoCatalog
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create catalog directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init catalog schema: %w", err)
	}
	return &Catalog{db: conn}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Playlists returns every playlist in catalog order.
func (c *Catalog) Playlists() ([]Playlist, error) {
	rows, err := c.db.Query(`
		SELECT p.id, p.position, p.name, COUNT(t.id)
		FROM playlists p
		LEFT JOIN playlist_tracks t ON t.playlist_id = p.id
		GROUP BY p.id
		ORDER BY p.position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []Playlist
	for rows.Next() {
		var p Playlist
		if err := rows.Scan(&p.ID, &p.Index, &p.Name, &p.TrackCount); err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

const trackColumns = `
	t.id, p.position, t.position, t.path, t.title, t.artist, t.album, t.duration_ms
`

// Tracks returns the tracks of the playlist at playlistIndex, in order.
func (c *Catalog) Tracks(playlistIndex int) ([]Track, error) {
	return c.queryTracks(`
		SELECT `+trackColumns+`
		FROM playlist_tracks t
		JOIN playlists p ON p.id = t.playlist_id
		WHERE p.position = ?
		ORDER BY t.position
	`, playlistIndex)
}

// AllTracks returns every track of every playlist, playlist by playlist.
func (c *Catalog) AllTracks() ([]Track, error) {
	return c.queryTracks(`
		SELECT ` + trackColumns + `
		FROM playlist_tracks t
		JOIN playlists p ON p.id = t.playlist_id
		ORDER BY p.position, t.position
	`)
}

// Track returns the n-th track (0-based) of the playlist at playlistIndex.
// It returns ErrTrackNotFound past either end.
func (c *Catalog) Track(playlistIndex, n int) (Track, error) {
	row := c.db.QueryRow(`
		SELECT `+trackColumns+`
		FROM playlist_tracks t
		JOIN playlists p ON p.id = t.playlist_id
		WHERE p.position = ? AND t.position = ?
	`, playlistIndex, n)

	t, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Track{}, ErrTrackNotFound
	}
	return t, err
}

func (c *Catalog) queryTracks(query string, args ...any) ([]Track, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrack(s scanner) (Track, error) {
	var t Track
	var artist, album sql.NullString
	var durationMS sql.NullInt64
	err := s.Scan(&t.ID, &t.PlaylistIndex, &t.Position, &t.Path, &t.Title, &artist, &album, &durationMS)
	if err != nil {
		return Track{}, err
	}
	t.Artist = db.NullStringValue(artist)
	t.Album = db.NullStringValue(album)
	t.Duration = time.Duration(db.NullInt64Value(durationMS)) * time.Millisecond
	return t, nil
}

// Replace swaps the whole catalog content for playlists, atomically.
func (c *Catalog) Replace(ctx context.Context, playlists []ScannedPlaylist) error {
	return db.WithTx(ctx, c.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM playlist_tracks`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM playlists`); err != nil {
			return err
		}

		for i, p := range playlists {
			res, err := tx.Exec(`INSERT INTO playlists (name, position) VALUES (?, ?)`, p.Name, i)
			if err != nil {
				return fmt.Errorf("insert playlist %q: %w", p.Name, err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for pos, t := range p.Tracks {
				_, err := tx.Exec(`
					INSERT INTO playlist_tracks (playlist_id, position, path, title, artist, album, duration_ms)
					VALUES (?, ?, ?, ?, ?, ?, ?)
				`, id, pos, t.Path, t.Title, nullString(t.Artist), nullString(t.Album), nullDuration(t.Duration))
				if err != nil {
					return fmt.Errorf("insert track %q: %w", t.Path, err)
				}
			}
		}
		return nil
	})
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullDuration(d time.Duration) sql.NullInt64 {
	return sql.NullInt64{Int64: d.Milliseconds(), Valid: d > 0}
}
