package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"pav-dashboard/ratings"
)

var (
	// ErrMissingColumn is returned when the CSV header lacks a required column.
	ErrMissingColumn = errors.New("missing column")
	// ErrMalformedRow is returned when a record cannot be coerced into a player row.
	ErrMalformedRow = errors.New("malformed row")
)

// ReadCSVFile reads player rows from the CSV file at path.
func ReadCSVFile(path string) ([]ratings.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// ReadCSV parses a ratings export. Header names are matched after trimming and
// replacing spaces with underscores, so "Total PAV" and "Total_PAV" both work.
// Extra columns are ignored.
func ReadCSV(r io.Reader) ([]ratings.Player, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, err
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []ratings.Player
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}

		p, err := parseRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, p)
	}
	return rows, nil
}

func headerIndex(header []string) (map[ratings.Column]int, error) {
	index := make(map[ratings.Column]int, len(ratings.Columns))
	for i, name := range header {
		c, err := ratings.ParseColumn(name)
		if err != nil {
			continue
		}
		// bare prefixes such as "Total" are query shorthands, not headers
		if !strings.EqualFold(ratings.NormalizeName(name), string(c)) {
			continue
		}
		index[c] = i
	}

	var missing []string
	for _, c := range ratings.Columns {
		if _, ok := index[c]; !ok {
			missing = append(missing, string(c))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRecord(record []string, index map[ratings.Column]int) (ratings.Player, error) {
	field := func(c ratings.Column) string {
		return strings.TrimSpace(record[index[c]])
	}

	p := ratings.Player{
		ID:   field(ratings.ColumnPlayer),
		Team: field(ratings.ColumnTeam),
	}
	if p.ID == "" {
		return p, fmt.Errorf("%w: empty player name", ErrMalformedRow)
	}

	games, err := strconv.Atoi(field(ratings.ColumnGames))
	if err != nil || games < 0 {
		return p, fmt.Errorf("%w: %s %q", ErrMalformedRow, ratings.ColumnGames, field(ratings.ColumnGames))
	}
	p.Games = games

	targets := map[ratings.Column]*float64{
		ratings.OffPAV:    &p.OffPAV,
		ratings.DefPAV:    &p.DefPAV,
		ratings.MidPAV:    &p.MidPAV,
		ratings.TotalPAV:  &p.TotalPAV,
		ratings.OffMPAV:   &p.OffMPAV,
		ratings.DefMPAV:   &p.DefMPAV,
		ratings.MidMPAV:   &p.MidMPAV,
		ratings.TotalMPAV: &p.TotalMPAV,
	}
	for c, dst := range targets {
		v, err := strconv.ParseFloat(field(c), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return p, fmt.Errorf("%w: %s %q", ErrMalformedRow, c, field(c))
		}
		*dst = v
	}
	return p, nil
}
