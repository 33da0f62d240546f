// Package renderer turns ledger views into markdown for terminal display.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	keiba "github.com/nazotarou/keiba-dashboard"
)

// SummaryMarkdown renders the grand summary.
func SummaryMarkdown(l *keiba.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{md.Bold("Invest"), Yen(l.Summary.TotalInvest)},
			{md.Bold("Payout"), Yen(l.Summary.TotalPayout)},
			{md.Bold("Profit"), SignedYen(l.Summary.TotalProfit)},
			{md.Bold("ROI"), Percent(l.Summary.ROI)},
		},
	})
	doc.PlainText(fmt.Sprintf("%d bets over %d races, last updated %s",
		l.TotalBets(), len(l.Races), l.LastUpdated))

	doc.Build()
	return buf.String()
}

// MonthlyMarkdown renders the monthly rollups, ascending by month.
func MonthlyMarkdown(l *keiba.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly")
	rows := make([][]string, 0, len(l.Monthly))
	for _, m := range l.Monthly {
		rows = append(rows, []string{
			m.Month, Yen(m.Invest), Yen(m.Payout), SignedYen(m.Profit), Percent(m.ROI),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Month", "Invest", "Payout", "Profit", "ROI"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}

// DailyMarkdown renders the daily rollups with the running cumulative.
func DailyMarkdown(l *keiba.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily")
	rows := make([][]string, 0, len(l.Daily))
	for _, d := range l.Daily {
		rows = append(rows, []string{
			fmt.Sprintf("%s (%s)", d.Date, d.DayOfWeek),
			Yen(d.Invest), Yen(d.Payout), SignedYen(d.Profit), SignedYen(d.Cumulative),
			d.Note,
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft,
		},
		Header: []string{"Date", "Invest", "Payout", "Profit", "Cumulative", "Note"},
		Rows:   rows,
	})

	doc.Build()
	return buf.String()
}
