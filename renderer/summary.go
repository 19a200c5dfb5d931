package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/openbroker/brokerbook"
)

// Summary renders a client's whole-history figures as a single line, the way
// the trade entry screen shows it.
func Summary(s brokerbook.ClientSummary) string {
	if !s.Known {
		return fmt.Sprintf("No valid client %q to summarize.", s.ClientID)
	}
	if s.Trades == 0 {
		return fmt.Sprintf("Client: %s | Mode: %s | No trades recorded yet.", s.ClientID, s.Mode)
	}
	return fmt.Sprintf("%s – %s: Buy %s, Sell %s, P&L %s",
		s.ClientID, s.Mode, s.TotalBuy, s.TotalSell, s.PnL)
}

// Slice renders the aggregation of one date slice: a totals line and the
// trades table.
func Slice(title string, s brokerbook.SliceSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	doc.PlainText(fmt.Sprintf("Buy %s | Sell %s | P&L %s", s.TotalBuy, s.TotalSell, s.PnL))
	doc.LF()
	if len(s.Trades) == 0 {
		doc.PlainText("No trades in this period.")
	} else {
		doc.Table(tableSet(brokerbook.TradeTable(s.Trades)))
	}
	return doc.String()
}

// Periods renders the daily and weekly summaries back to back.
func Periods(p brokerbook.PeriodSummary) string {
	daily := Slice(fmt.Sprintf("Daily Summary %s", p.Daily.To), p.Daily)
	weekly := Slice(fmt.Sprintf("Weekly Summary %s to %s", p.Weekly.From, p.Weekly.To), p.Weekly)
	return daily + "\n" + weekly
}

// Positions renders a client's raw holdings, without valuation.
func Positions(clientID string, positions []brokerbook.Position) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Holdings for %s", clientID))
	if len(positions) == 0 {
		doc.PlainText("No holdings to report.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Stock", "Qty"},
		Rows:      [][]string{},
	}
	for _, p := range positions {
		table.Rows = append(table.Rows, []string{p.Instrument, fmt.Sprintf("%d", p.Quantity)})
	}
	doc.Table(table)
	return doc.String()
}
