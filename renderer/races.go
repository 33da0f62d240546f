package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	keiba "github.com/nazotarou/keiba-dashboard"
)

// RacesMarkdown renders every race with its roster and bets, ascending by
// race key.
func RacesMarkdown(l *keiba.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Races")
	for _, key := range l.RaceKeys() {
		race := l.Races[key]
		doc.H2(key)
		if race.Title != "" {
			doc.PlainText(md.Italic(race.Title))
		}

		rows := make([][]string, 0, len(race.Bets))
		for _, bet := range race.Bets {
			rows = append(rows, []string{
				bet.Type,
				selectionWithNames(bet.Selection, race.Horses),
				Yen(bet.Amount),
				Yen(bet.Payout),
				bet.Weapon,
				bet.Result,
			})
		}
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft, md.AlignLeft,
			},
			Header: []string{"Type", "Selection", "Amount", "Payout", "Weapon", "Result"},
			Rows:   rows,
		})
	}

	doc.Build()
	return buf.String()
}

// selectionWithNames decorates a selection with the roster names of its
// runners, e.g. "05-11 (A / B)". Unknown runners stay bare.
func selectionWithNames(selection string, horses map[string]string) string {
	var names []string
	for _, num := range keiba.ParseSelection(selection) {
		if name, ok := horses[num]; ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return selection
	}
	return fmt.Sprintf("%s (%s)", selection, strings.Join(names, " / "))
}
