package renderer

import (
	"fmt"

	"github.com/openbroker/brokerbook"
)

// Trade renders a one line confirmation for a freshly recorded trade.
func Trade(t brokerbook.Trade) string {
	verb := "Bought"
	if t.Seller != brokerbook.MarketID {
		verb = "Sold"
	}
	return fmt.Sprintf("%s %d %s on %s (%s): buy value %s, sell value %s, P&L %s",
		verb, t.Quantity, t.Instrument, t.Date, t.Type, t.BuyValue, t.SellValue, t.PnL)
}
