package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/tracknav/internal/errmsg"
	"github.com/llehouerou/tracknav/internal/library"
	"github.com/llehouerou/tracknav/internal/ui/render"
)

var importCmd = &cobra.Command{
	Use:   "import [dir...]",
	Short: "Rebuild the catalog from music directories",
	Long: "import scans each directory for music files and replaces the catalog with one playlist per directory. " +
		"Without arguments the [library] sources of the config are scanned.",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()

		roots := args
		if len(roots) == 0 {
			roots = e.cfg.Library.Sources
		}
		if len(roots) == 0 {
			return errors.New("no directories given and [library] sources is empty")
		}

		start := time.Now()
		playlists, tracks, err := importRoots(cmd.Context(), e, roots)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %s playlists, %s tracks into %s (%s)\n",
			humanize.Comma(int64(playlists)), humanize.Comma(int64(tracks)),
			e.cfg.Library.Catalog, time.Since(start).Round(time.Millisecond))
		return nil
	},
}

var playlistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "List the playlists of the catalog",
	RunE: func(_ *cobra.Command, _ []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()

		playlists, err := e.catalog.Playlists()
		if err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpPlaylistsLoad, err)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, p := range playlists {
			tracks, err := e.catalog.Tracks(p.Index)
			if err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpTracksLoad, err)
			}
			var total time.Duration
			for _, t := range tracks {
				total += t.Duration
			}
			fmt.Fprintf(w, "%d\t%s\t%s tracks\t%s\n", p.Index, p.Name, humanize.Comma(int64(p.TrackCount)), render.Duration(total))
		}
		return w.Flush()
	},
}

func importRoots(ctx context.Context, e *env, roots []string) (playlists, tracks int, err error) {
	scanned, err := library.Scan(ctx, roots)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", errmsg.OpCatalogImport, err)
	}
	if err := e.catalog.Replace(ctx, scanned); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", errmsg.OpCatalogImport, err)
	}
	for _, p := range scanned {
		tracks += len(p.Tracks)
	}
	e.log.Info("catalog imported", "roots", roots, "playlists", len(scanned), "tracks", tracks)
	return len(scanned), tracks, nil
}

// importIfEmpty fills an empty catalog from the configured sources on first
// run.
func importIfEmpty(ctx context.Context, e *env) error {
	if len(e.cfg.Library.Sources) == 0 {
		return nil
	}
	existing, err := e.catalog.Playlists()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpPlaylistsLoad, err)
	}
	if len(existing) > 0 {
		return nil
	}
	_, _, err = importRoots(ctx, e, e.cfg.Library.Sources)
	return err
}
