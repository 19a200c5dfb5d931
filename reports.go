package brokerbook

import "strconv"

// Table is a read-only tabular extract: an ordered list of column names and
// rows of stringified cells. It is the contract with presentation and export
// collaborators, which need consistent columns and stringifiable values and
// nothing else.
type Table struct {
	Header []string
	Rows   [][]string
}

// Append adds a row to the table.
func (t *Table) Append(cells ...string) { t.Rows = append(t.Rows, cells) }

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// ClientSummary aggregates a client's whole ledger history: buy values where
// the client bought, sell values where it sold, and profit and loss over
// every trade it took part in.
type ClientSummary struct {
	ClientID  string
	Mode      TradeMode
	Known     bool // false when the id is not registered
	Trades    int  // number of trades involving the client
	TotalBuy  Money
	TotalSell Money
	PnL       Money
}

// SliceSummary aggregates all clients' trades within [From, To], both ends
// included. A day slice has From equal to To.
type SliceSummary struct {
	From, To  Date
	Trades    []Trade
	TotalBuy  Money
	TotalSell Money
	PnL       Money
}

// PeriodSummary holds the two fixed aggregations of the summary screen:
// today and the trailing week.
type PeriodSummary struct {
	Daily  SliceSummary // trades dated today
	Weekly SliceSummary // trades within the last 7 days, today included
}

// HoldingValuation values one position of a client's holdings at the current
// quote. A failed quote values the position at zero rather than failing the
// report.
type HoldingValuation struct {
	Instrument string
	Quantity   int64
	Previous   Money // previous close
	Current    Money // latest close
	Value      Money // Quantity x Current
}

// RangeReport is the extract for one client over an inclusive date range:
// the client's trades in range, their totals, and a valuation snapshot of
// the client's holdings at range end.
type RangeReport struct {
	ClientID  string
	From, To  Date
	Trades    []Trade
	TotalBuy  Money
	TotalSell Money
	PnL       Money
	Holdings  []HoldingValuation
}

// Column names of the trade extract, in order.
var tradeColumns = []string{
	"Date", "Stock", "Qty", "Buy Price", "Sell Price", "Buyer", "Seller",
	"Buy Value", "Sell Value", "Type", "Buy Brokerage %", "Sell Brokerage %", "P&L",
}

// TradeTable converts trades into the tabular extract shape.
func TradeTable(trades []Trade) Table {
	t := Table{Header: tradeColumns}
	for _, trade := range trades {
		t.Append(
			trade.Date.String(),
			trade.Instrument,
			strconv.FormatInt(trade.Quantity, 10),
			trade.BuyPrice.Fixed(),
			trade.SellPrice.Fixed(),
			trade.Buyer,
			trade.Seller,
			trade.BuyValue.Fixed(),
			trade.SellValue.Fixed(),
			string(trade.Type),
			trade.BuyBrokerage.String(),
			trade.SellBrokerage.String(),
			trade.PnL.Fixed(),
		)
	}
	return t
}

// HoldingsTable converts a client's holdings valuation into the tabular
// extract shape.
func HoldingsTable(clientID string, holdings []HoldingValuation) Table {
	t := Table{Header: []string{"Client", "Stock", "Qty", "Prev", "Current", "Value"}}
	for _, h := range holdings {
		t.Append(
			clientID,
			h.Instrument,
			strconv.FormatInt(h.Quantity, 10),
			h.Previous.Fixed(),
			h.Current.Fixed(),
			h.Value.Fixed(),
		)
	}
	return t
}
