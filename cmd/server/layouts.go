package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/iliyamo/cinema-showcase/internal/config"
	"github.com/iliyamo/cinema-showcase/internal/database"
	"github.com/iliyamo/cinema-showcase/internal/layout"
	"github.com/iliyamo/cinema-showcase/internal/repository"
	"github.com/iliyamo/cinema-showcase/internal/seatmap"
)

// newLayoutSource picks the layout store: MySQL when DB_HOST is set, the
// YAML file when LAYOUTS_FILE is set, otherwise the reference hall.  The
// returned func releases the database handle if one was opened.
func newLayoutSource(ctx context.Context, lc config.LayoutConfig) (layout.Source, func(), error) {
	if lc.DB.Enabled {
		db, err := database.Open(lc.DB.User, lc.DB.Pass, lc.DB.Host, lc.DB.Port, lc.DB.Name)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Printf("layouts: mysql %s/%s", lc.DB.Host, lc.DB.Name)
		return repository.NewLayoutRepo(db), func() { _ = db.Close() }, nil
	}
	if lc.File != "" {
		src, err := layout.FromFile(lc.File)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("layouts: file %s", lc.File)
		return src, func() {}, nil
	}
	log.Printf("layouts: built-in %s", seatmap.DefaultTheaterID)
	return layout.Default(), func() {}, nil
}

func newSeatmapCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "seatmap [theater-id]",
		Short: "Print the seat grid of a theater",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lc := config.LoadLayoutConfig()
			src, closeFn, err := newLayoutSource(ctx, lc)
			if err != nil {
				return err
			}
			defer closeFn()

			id := lc.DefaultTheater
			if len(args) == 1 {
				id = args[0]
			}
			t, err := src.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("theater %q: %w", id, err)
			}
			grid := t.Grid()
			sum := seatmap.Summarize(grid)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n\n", t.Name, t.ID)
			fmt.Fprint(out, seatmap.Render(grid))
			fmt.Fprintf(out, "\nseats=%d gaps=%d available=%d occupied=%d selected=%d vip=%d\n",
				sum.Seats, sum.Gaps,
				sum.PerStatus[seatmap.StatusAvailable], sum.PerStatus[seatmap.StatusOccupied],
				sum.PerStatus[seatmap.StatusSelected], sum.PerStatus[seatmap.StatusVIP])
			return nil
		},
	}
}

func newImportLayoutsCmd(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "import-layouts <file.yaml>",
		Short: "Load theater layouts from a YAML file into MySQL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theaters, err := seatmap.LoadTheaters(args[0])
			if err != nil {
				return err
			}
			dbc := config.LoadLayoutConfig().DB
			if !dbc.Enabled {
				return fmt.Errorf("DB_HOST is not set")
			}
			db, err := database.Open(dbc.User, dbc.Pass, dbc.Host, dbc.Port, dbc.Name)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()
			if err := database.EnsureSchema(ctx, db); err != nil {
				return err
			}

			repo := repository.NewLayoutRepo(db)
			for _, t := range theaters {
				if err := repo.Save(ctx, t); err != nil {
					return fmt.Errorf("save %s: %w", t.ID, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d rows)\n", t.ID, len(t.Rows))
			}
			return nil
		},
	}
}
