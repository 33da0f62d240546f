// Package cmd implements the CLI application to manage the betting ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	keiba "github.com/nazotarou/keiba-dashboard"
	"github.com/nazotarou/keiba-dashboard/jvlink"
)

// Commands lists every subcommand of the kd tool.
// A main package registers each of them and Execute()s the selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&buildCmd{},
	&validateCmd{},
	&fmtCmd{},
	&summaryCmd{},
	&dailyCmd{},
	&monthlyCmd{},
	&racesCmd{},
	&queryCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "kd.yaml", "Path to the kd configuration file")
var dataFile = flag.String("data-file", "", "Path to the ledger JSON document (overrides config)")
var jvlinkFile = flag.String("jvlink-db", "", "Path to the JV-Link SQLite database (overrides config)")

// DecodeLedgerFile is the central function to open the ledger document.
// A missing document yields an empty ledger, so the first `kd add` starts
// the file.
func DecodeLedgerFile() (*keiba.Ledger, error) {
	path := ledgerPath()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", path).Msg("ledger does not exist, starting an empty one")
		return keiba.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger %q: %w", path, err)
	}
	defer f.Close()

	l, err := keiba.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("read ledger %q: %w", path, err)
	}
	return l, nil
}

// EncodeLedgerFile persists the ledger document in place. An error here is
// fatal to the whole operation.
func EncodeLedgerFile(l *keiba.Ledger) error {
	path := ledgerPath()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write ledger %q: %w", path, err)
	}
	defer f.Close()

	if err := keiba.EncodeLedger(f, l); err != nil {
		return fmt.Errorf("write ledger %q: %w", path, err)
	}
	return nil
}

// OpenLookup opens the JV-Link database, or returns nil when it is
// unavailable. Unavailability is a degraded mode, not an error: rosters
// simply stay unpopulated.
func OpenLookup() *jvlink.DB {
	path := jvlinkPath()
	db, err := jvlink.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("JV-Link database unavailable")
		return nil
	}
	return db
}
