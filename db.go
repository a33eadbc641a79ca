package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"pav-dashboard/ratings"
	"pav-dashboard/store"
)

const dbFile = "HPN_Data.db"

func defaultDSN() string {
	// Check for Railway volume mount path
	if mountPath := os.Getenv("RAILWAY_VOLUME_MOUNT_PATH"); mountPath != "" {
		return filepath.Join(mountPath, dbFile)
	}
	// Local development
	return "./" + dbFile
}

func openStore(cfg Config) (*store.SQLStore, error) {
	s, err := store.Open(cfg.DBDriver, cfg.DBDSN, cfg.Season)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", cfg.DBDriver, cfg.DBDSN, err)
	}
	return s, nil
}

// loadTable reads the season's ratings once, from the CSV export or from the
// table the load command filled.
func loadTable(ctx context.Context, cfg Config) (ratings.Table, error) {
	switch cfg.Source {
	case sourceCSV:
		rows, err := store.ReadCSVFile(cfg.CSVPath)
		if err != nil {
			return ratings.Table{}, err
		}
		log.Info().Str("path", cfg.CSVPath).Int("rows", len(rows)).Msg("📄 Loaded ratings CSV")
		return ratings.NewTable(ratings.Disambiguate(rows)), nil

	case sourceDB:
		s, err := openStore(cfg)
		if err != nil {
			return ratings.Table{}, err
		}
		defer s.Close()

		t, err := s.Load(ctx)
		if err != nil {
			return ratings.Table{}, err
		}
		log.Info().Str("table", s.Table()).Int("rows", t.Len()).Msg("🗄️ Loaded ratings table")
		return t, nil
	}
	return ratings.Table{}, fmt.Errorf("unknown source %q (want %s or %s)", cfg.Source, sourceCSV, sourceDB)
}
