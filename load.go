package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"pav-dashboard/ratings"
	"pav-dashboard/store"
)

// runLoad is the ETL: read the CSV export, make player names unique and write
// the rows into the season table. The table is replaced unless appendRows is set.
func runLoad(ctx context.Context, cfg Config, appendRows bool) (int, error) {
	rows, err := store.ReadCSVFile(cfg.CSVPath)
	if err != nil {
		return 0, err
	}

	rows = ratings.Disambiguate(rows)
	if dups := ratings.Duplicates(rows); len(dups) > 0 {
		log.Warn().Strs("players", dups).Msg("⚠️ Player names still collide after adding team codes")
	}
	if _, err := ratings.TeamOptions(ratings.NewTable(rows)); err != nil {
		return 0, err
	}

	s, err := openStore(cfg)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	if err := s.CreateTable(ctx); err != nil {
		return 0, err
	}

	n, err := s.Write(ctx, rows, appendRows)
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", s.Table(), err)
	}
	etlRowsWritten.Add(float64(n))

	log.Info().
		Str("table", s.Table()).
		Int("rows", n).
		Bool("append", appendRows).
		Msg("✅ Data loaded")
	return n, nil
}
