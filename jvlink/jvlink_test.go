package jvlink

import (
	"reflect"
	"testing"

	keiba "github.com/nazotarou/keiba-dashboard"
)

// The production lookup must satisfy the enrichment interface.
var _ keiba.NameLookup = (*DB)(nil)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDSN(":memory:")
	if err != nil {
		t.Fatalf("OpenDSN(:memory:) returned error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	stmts := []string{
		`CREATE TABLE race_horses (
			race_date TEXT NOT NULL,
			jyo_code  TEXT NOT NULL,
			race_num  TEXT NOT NULL,
			umaban    TEXT NOT NULL,
			bamei     TEXT NOT NULL
		)`,
		`INSERT INTO race_horses VALUES ('20260105', '06', '05', '3', 'ハヤテマル')`,
		`INSERT INTO race_horses VALUES ('20260105', '06', '05', '12', 'キタノオーカン')`,
		`INSERT INTO race_horses VALUES ('20260105', '06', '05', '01', 'サードホース')`,
		`INSERT INTO race_horses VALUES ('20260105', '06', '06', '03', 'ベツノレース')`,
	}
	for _, stmt := range stmts {
		if _, err := db.db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return db
}

func TestDB_HorseNames(t *testing.T) {
	db := openTestDB(t)

	got, err := db.HorseNames("20260105", "06", "05", []string{"3", "12"})
	if err != nil {
		t.Fatalf("HorseNames() returned error: %v", err)
	}
	// Keys are zero-padded regardless of how the database stores umaban.
	want := map[string]string{"03": "ハヤテマル", "12": "キタノオーカン"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HorseNames() = %v, want %v", got, want)
	}
}

func TestDB_HorseNames_NoNums(t *testing.T) {
	db := openTestDB(t)

	got, err := db.HorseNames("20260105", "06", "05", nil)
	if err != nil {
		t.Fatalf("HorseNames() returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("HorseNames() = %v, want empty", got)
	}
}

func TestDB_HorseNames_UnknownRace(t *testing.T) {
	db := openTestDB(t)

	got, err := db.HorseNames("20991231", "01", "01", []string{"01"})
	if err != nil {
		t.Fatalf("HorseNames() returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("HorseNames() = %v, want empty for an unknown race", got)
	}
}

func TestDB_Runners(t *testing.T) {
	db := openTestDB(t)

	got, err := db.Runners("20260105", "06", 5)
	if err != nil {
		t.Fatalf("Runners() returned error: %v", err)
	}
	want := map[string]string{"01": "サードホース", "03": "ハヤテマル", "12": "キタノオーカン"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Runners() = %v, want %v", got, want)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(t.TempDir() + "/absent.db"); err == nil {
		t.Error("Open() succeeded on a missing file")
	}
}
