// Package keiba maintains a personal ledger of horse-race betting activity.
// It is designed to be local-first and auditable: the whole ledger lives in a
// single JSON document that the operator can read, diff and version.
//
// The core functionalities include:
//   - Ledger Management: recording every bet under the race it was placed on,
//     keyed by date and venue, append-only.
//   - Aggregation: deriving the daily, monthly and grand performance rollups
//     from the raw bets, fully recomputed on every mutation.
//   - Roster Enrichment: filling each race's runner roster with horse names
//     looked up from a local JV-Link database, without ever overwriting a
//     manually curated roster.
//   - Validation: checking bet-type and selection fields against the closed
//     set of ticket forms the dashboard understands.
//   - Data Persistence: decoding and encoding the document losslessly, so
//     that fields this package does not know about survive a round-trip.
//
// This package serves as the foundational logic for the `kd` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package keiba
