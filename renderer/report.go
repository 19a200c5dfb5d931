package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/openbroker/brokerbook"
)

// Range renders a client's date range report: the trades extract with its
// totals, then the holdings valuation snapshot.
func Range(r *brokerbook.RangeReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("%s Report %s to %s", r.ClientID, r.From, r.To))

	if len(r.Trades) == 0 {
		doc.PlainText("No trades in selected date range.")
	} else {
		doc.Table(tableSet(brokerbook.TradeTable(r.Trades)))
		doc.PlainText(fmt.Sprintf("Buy %s | Sell %s | P&L %s", r.TotalBuy, r.TotalSell, r.PnL))
	}
	doc.LF()

	doc.H2(fmt.Sprintf("Holdings as of %s", r.To))
	if len(r.Holdings) == 0 {
		doc.PlainText(fmt.Sprintf("No holdings to report for %s.", r.ClientID))
	} else {
		doc.Table(tableSet(brokerbook.HoldingsTable(r.ClientID, r.Holdings)))
	}
	return doc.String()
}
