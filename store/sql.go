package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pav-dashboard/ratings"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/lib/pq"
)

const queryTimeout = 10 * time.Second

// TableName is the ratings table for a season, e.g. PlayerRatings2023.
func TableName(season int) string {
	return fmt.Sprintf("PlayerRatings%d", season)
}

type playerRecord struct {
	Player    string  `db:"player"`
	TM        string  `db:"tm"`
	GM        int     `db:"gm"`
	OffPAV    float64 `db:"off_pav"`
	DefPAV    float64 `db:"def_pav"`
	MidPAV    float64 `db:"mid_pav"`
	TotalPAV  float64 `db:"total_pav"`
	OffMPAV   float64 `db:"off_mpav"`
	DefMPAV   float64 `db:"def_mpav"`
	MidMPAV   float64 `db:"mid_mpav"`
	TotalMPAV float64 `db:"total_mpav"`
}

func (r playerRecord) player() ratings.Player {
	return ratings.Player{
		ID:        r.Player,
		Team:      r.TM,
		Games:     r.GM,
		OffPAV:    r.OffPAV,
		DefPAV:    r.DefPAV,
		MidPAV:    r.MidPAV,
		TotalPAV:  r.TotalPAV,
		OffMPAV:   r.OffMPAV,
		DefMPAV:   r.DefMPAV,
		MidMPAV:   r.MidMPAV,
		TotalMPAV: r.TotalMPAV,
	}
}

// SQLStore reads and writes one season's ratings table. The driver is either
// "sqlite" (the default, a local file) or "postgres".
type SQLStore struct {
	db    *sqlx.DB
	table string
}

// Open connects to the database and checks it is reachable.
func Open(driver, dsn string, season int) (*SQLStore, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return New(db, season), nil
}

// New wraps an existing connection.
func New(db *sqlx.DB, season int) *SQLStore {
	return &SQLStore{db: db, table: TableName(season)}
}

// Table returns the name of the season table, e.g. PlayerRatings2023.
func (s *SQLStore) Table() string { return s.table }

// Close closes the underlying connection pool.
func (s *SQLStore) Close() error { return s.db.Close() }

// Ping checks the database is still reachable.
func (s *SQLStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// CreateTable creates the ratings table if it does not exist yet.
func (s *SQLStore) CreateTable(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
    CREATE TABLE IF NOT EXISTS %s (
        Player TEXT,
        TM TEXT,
        GM INTEGER,
        Off_PAV REAL,
        Def_PAV REAL,
        Mid_PAV REAL,
        Total_PAV REAL,
        Off_mPAV REAL,
        Def_mPAV REAL,
        Mid_mPAV REAL,
        Total_mPAV REAL
    );`, s.table))
	if err != nil {
		return fmt.Errorf("create %s: %w", s.table, err)
	}
	return nil
}

// Load reads every row of the table in storage order.
func (s *SQLStore) Load(ctx context.Context) (ratings.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var records []playerRecord
	err := s.db.SelectContext(ctx, &records, fmt.Sprintf(`
		SELECT Player AS player, TM AS tm, GM AS gm,
			Off_PAV AS off_pav, Def_PAV AS def_pav, Mid_PAV AS mid_pav, Total_PAV AS total_pav,
			Off_mPAV AS off_mpav, Def_mPAV AS def_mpav, Mid_mPAV AS mid_mpav, Total_mPAV AS total_mpav
		FROM %s`, s.table))
	if err != nil {
		return ratings.Table{}, fmt.Errorf("load %s: %w", s.table, err)
	}

	rows := make([]ratings.Player, len(records))
	for i, r := range records {
		rows[i] = r.player()
	}
	return ratings.NewTable(rows), nil
}

// Write inserts rows in a single transaction. Unless appendRows is set the table is
// emptied first, so the table mirrors the last loaded CSV.
func (s *SQLStore) Write(ctx context.Context, rows []ratings.Player, appendRows bool) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if !appendRows {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", s.table)); err != nil {
			return 0, fmt.Errorf("clear %s: %w", s.table, err)
		}
	}

	stmt, err := tx.PreparexContext(ctx, tx.Rebind(fmt.Sprintf(`
    INSERT INTO %s (
        Player, TM, GM, Off_PAV, Def_PAV, Mid_PAV, Total_PAV, Off_mPAV, Def_mPAV, Mid_mPAV, Total_mPAV
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`, s.table)))
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range rows {
		_, err := stmt.ExecContext(ctx,
			p.ID, p.Team, p.Games,
			p.OffPAV, p.DefPAV, p.MidPAV, p.TotalPAV,
			p.OffMPAV, p.DefMPAV, p.MidMPAV, p.TotalMPAV)
		if err != nil {
			return 0, fmt.Errorf("insert row %d (%q): %w", i+1, p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(rows), nil
}
