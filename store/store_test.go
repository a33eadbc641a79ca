package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pav-dashboard/ratings"
)

const header = "Player,TM,GM,Off_PAV,Def_PAV,Mid_PAV,Total_PAV,Off_mPAV,Def_mPAV,Mid_mPAV,Total_mPAV\n"

func TestReadCSV(t *testing.T) {
	input := header +
		"Dustin Martin,RI,18,6.05,0.62,3.21,9.88,0.34,0.03,0.18,0.55\n" +
		"Oscar McInerney, BL ,21,2.33,1.78,-0.35,3.76,0.11,0.08,-0.02,0.18\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, ratings.Player{
		ID: "Dustin Martin", Team: "RI", Games: 18,
		OffPAV: 6.05, DefPAV: 0.62, MidPAV: 3.21, TotalPAV: 9.88,
		OffMPAV: 0.34, DefMPAV: 0.03, MidMPAV: 0.18, TotalMPAV: 0.55,
	}, rows[0])
	assert.Equal(t, "BL", rows[1].Team)
	assert.Equal(t, -0.35, rows[1].MidPAV)
}

func TestReadCSVColumnOrderAndExtras(t *testing.T) {
	input := "Rank,TM,Player,Total PAV,GM,Off PAV,Def PAV,Mid PAV,Off mPAV,Def mPAV,Mid mPAV,Total mPAV\n" +
		"1,WB,Marcus Bontempelli,24.6,23,9.41,3.12,12.07,0.41,0.14,0.52,1.07\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Marcus Bontempelli", rows[0].ID)
	assert.Equal(t, 24.6, rows[0].TotalPAV)
	assert.Equal(t, 23, rows[0].Games)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty file", "", ErrMissingColumn},
		{"missing column", "Player,TM,GM\nA,RI,1\n", ErrMissingColumn},
		{"bad number", header + "A,RI,3,x,0,0,0,0,0,0,0\n", ErrMalformedRow},
		{"negative games", header + "A,RI,-1,0,0,0,0,0,0,0,0\n", ErrMalformedRow},
		{"short row", header + "A,RI,3,0,0\n", ErrMalformedRow},
		{"blank player", header + ",RI,3,0,0,0,0,0,0,0,0\n", ErrMalformedRow},
		{"not a number", header + "A,RI,3,0,0,0,NaN,0,0,0,0\n", ErrMalformedRow},
		{"infinite", header + "A,RI,3,0,-Inf,0,0,0,0,0,0\n", ErrMalformedRow},
		{"overflow", header + "A,RI,3,0,0,0,1e400,0,0,0,0\n", ErrMalformedRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadCSVFileSample(t *testing.T) {
	rows, err := ReadCSVFile(filepath.Join("testdata", "2023_HPN_sample.csv"))
	require.NoError(t, err)
	assert.Len(t, rows, 12)
	assert.Equal(t, []string{"Tom Lynch"}, ratings.Duplicates(rows))

	_, err = ReadCSVFile(filepath.Join("testdata", "missing.csv"))
	assert.Error(t, err)
}

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()

	s, err := Open("sqlite", filepath.Join(t.TempDir(), "HPN_Data.db"), 2023)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.CreateTable(context.Background()))
	return s
}

func TestSQLStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	assert.Equal(t, "PlayerRatings2023", s.Table())

	rows, err := ReadCSVFile(filepath.Join("testdata", "2023_HPN_sample.csv"))
	require.NoError(t, err)
	rows = ratings.Disambiguate(rows)

	n, err := s.Write(ctx, rows, false)
	require.NoError(t, err)
	assert.Equal(t, len(rows), n)

	table, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, table.Rows())
}

func TestSQLStoreWriteReplacesUnlessAppending(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	first := []ratings.Player{{ID: "A", Team: "RI", Games: 1, TotalPAV: 1}}
	second := []ratings.Player{{ID: "B", Team: "CA", Games: 2, TotalPAV: 2}}

	_, err := s.Write(ctx, first, false)
	require.NoError(t, err)
	_, err = s.Write(ctx, second, false)
	require.NoError(t, err)

	table, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, table.IDs())

	_, err = s.Write(ctx, first, true)
	require.NoError(t, err)

	table, err = s.Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, table.IDs())
}

func TestSQLStoreLoadMissingTable(t *testing.T) {
	s, err := Open("sqlite", filepath.Join(t.TempDir(), "empty.db"), 1999)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load(context.Background())
	assert.Error(t, err)
}
