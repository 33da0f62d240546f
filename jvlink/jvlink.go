// Package jvlink reads horse names from a local JV-Link SQLite export.
//
// The database is an external, read-only collaborator: it may be absent or
// stale, and every caller treats an empty answer as a missed enrichment,
// not an error.
package jvlink

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// DB is a handle on the race_horses table of a JV-Link export.
type DB struct {
	db *sql.DB
}

// Open opens the SQLite database at path. The file must already exist;
// opening a path that is missing returns an error instead of silently
// creating an empty database.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("jvlink database: %w", err)
	}
	return open(path)
}

// OpenDSN opens the database with a raw driver DSN, ":memory:" included.
// Tests use it; production callers want Open.
func OpenDSN(dsn string) (*DB, error) {
	return open(dsn)
}

func open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open jvlink database: %w", err)
	}
	return &DB{db: db}, nil
}

// Close releases the underlying handle.
func (d *DB) Close() error { return d.db.Close() }

// pad2 zero-pads a number the way the dashboard document stores it.
func pad2(num string) string {
	if len(num) < 2 {
		return "0" + num
	}
	return num
}

// HorseNames returns the names of the requested runner numbers for one
// race, keyed by two-digit runner number. Numbers absent from the database
// are absent from the result.
func (d *DB) HorseNames(raceDate, venueCode, raceNum string, nums []string) (map[string]string, error) {
	horses := make(map[string]string)
	if len(nums) == 0 {
		return horses, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(nums)), ",")
	query := fmt.Sprintf(`
		SELECT umaban, bamei FROM race_horses
		WHERE race_date = ? AND jyo_code = ? AND race_num = ?
		  AND umaban IN (%s)`, placeholders)

	args := make([]any, 0, 3+len(nums))
	args = append(args, raceDate, venueCode, raceNum)
	for _, num := range nums {
		args = append(args, num)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query race_horses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var umaban, bamei string
		if err := rows.Scan(&umaban, &bamei); err != nil {
			return nil, fmt.Errorf("scan race_horses: %w", err)
		}
		horses[pad2(umaban)] = bamei
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read race_horses: %w", err)
	}
	return horses, nil
}

// Runners returns the full card of a race, keyed by two-digit runner
// number, for display when a bet is being recorded.
func (d *DB) Runners(raceDate, venueCode string, raceNum int) (map[string]string, error) {
	rows, err := d.db.Query(`
		SELECT umaban, bamei FROM race_horses
		WHERE race_date = ? AND jyo_code = ? AND race_num = ?
		ORDER BY CAST(umaban AS INTEGER)`,
		raceDate, venueCode, fmt.Sprintf("%02d", raceNum))
	if err != nil {
		return nil, fmt.Errorf("query race_horses: %w", err)
	}
	defer rows.Close()

	horses := make(map[string]string)
	for rows.Next() {
		var umaban, bamei string
		if err := rows.Scan(&umaban, &bamei); err != nil {
			return nil, fmt.Errorf("scan race_horses: %w", err)
		}
		horses[pad2(umaban)] = bamei
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read race_horses: %w", err)
	}
	return horses, nil
}
