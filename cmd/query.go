package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	path string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract a value from the raw document with a JSONPath" }
func (*queryCmd) Usage() string {
	return `kd query -p <jsonpath>

  Evaluates a JSONPath expression against the raw ledger document and prints
  the result as JSON. Handy for scripting and for inspecting auxiliary
  fields the other commands do not surface.

Usage Examples:
$ kd query -p $.summary.roi
$ kd query -p $.daily[-1].cumulative

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "p", "$", "JSONPath expression to evaluate.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := os.ReadFile(ledgerPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "cannot parse ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	value, err := jsonpath.Get(c.path, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonpath %q: %v\n", c.path, err)
		return subcommands.ExitUsageError
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
