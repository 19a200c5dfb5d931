package brokerbook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TradeMode tells which side of a trade the registered client takes. The
// other side is always the synthetic market counterparty.
type TradeMode int

const (
	// Buy means the client is the buyer and MARKET the seller.
	Buy TradeMode = iota
	// Sell means the client is the seller and MARKET the buyer.
	Sell
)

func (m TradeMode) String() string {
	switch m {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseTradeMode parses a string into a TradeMode.
func ParseTradeMode(s string) (TradeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, validationf("unknown trade mode %q, want buy or sell", s)
	}
}

// TradeType is the market or segment label a trade was executed on.
type TradeType string

// Trade types as offered by the original trade entry form.
const (
	NSE      TradeType = "NSE"
	BSE      TradeType = "BSE"
	Future   TradeType = "FUTURE"
	MCX      TradeType = "MCX"
	Options  TradeType = "OPTIONS"
	Currency TradeType = "CURRENCY"
	Intraday TradeType = "INTRADAY"
	Delivery TradeType = "DELIVERY"
)

// TradeTypes lists all valid trade types, in the order they are offered to
// the user.
func TradeTypes() []TradeType {
	return []TradeType{NSE, BSE, Future, MCX, Options, Currency, Intraday, Delivery}
}

// ParseTradeType parses a string into a TradeType.
func ParseTradeType(s string) (TradeType, error) {
	t := TradeType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range TradeTypes() {
		if t == known {
			return t, nil
		}
	}
	return "", validationf("unknown trade type %q", s)
}

// Trade is an immutable record of a single executed trade. Trades are never
// mutated or deleted once appended; corrections are modeled as new
// offsetting trades.
//
// Both prices are recorded even when only one side is the real counterparty:
// the entry form captures a buy and a sell price for every trade, and the
// computed values and profit apply brokerage to both legs. See the brokerage
// documentation topic for the exact formula.
type Trade struct {
	Date          Date
	Instrument    string // symbol, normalized to uppercase
	Quantity      int64  // always positive; the sign comes from the buyer/seller roles
	BuyPrice      Money
	SellPrice     Money
	Buyer         string // client id or MarketID
	Seller        string // client id or MarketID
	BuyBrokerage  decimal.Decimal // percentage applied to the buy leg
	SellBrokerage decimal.Decimal // percentage applied to the sell leg
	BuyValue      Money           // quantity*buyPrice*(1+buyBrokerage/100), rounded
	SellValue     Money           // quantity*sellPrice*(1-sellBrokerage/100), rounded
	PnL           Money           // sellValue - buyValue
	Type          TradeType
}

// Involves reports whether the client id is the buyer or the seller.
func (t Trade) Involves(id string) bool { return t.Buyer == id || t.Seller == id }

// MarshalJSON implements the json.Marshaler interface for Trade, with a
// canonical key order for the ledger file.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("instrument", t.Instrument)
	w.Append("quantity", t.Quantity)
	w.Append("buyPrice", t.BuyPrice)
	w.Append("sellPrice", t.SellPrice)
	w.Append("buyer", t.Buyer)
	w.Append("seller", t.Seller)
	w.Append("buyBrokerage", t.BuyBrokerage)
	w.Append("sellBrokerage", t.SellBrokerage)
	w.Append("buyValue", t.BuyValue)
	w.Append("sellValue", t.SellValue)
	w.Append("pnl", t.PnL)
	w.Append("type", t.Type)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Trade.
func (t *Trade) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date          Date            `json:"date"`
		Instrument    string          `json:"instrument"`
		Quantity      int64           `json:"quantity"`
		BuyPrice      Money           `json:"buyPrice"`
		SellPrice     Money           `json:"sellPrice"`
		Buyer         string          `json:"buyer"`
		Seller        string          `json:"seller"`
		BuyBrokerage  decimal.Decimal `json:"buyBrokerage"`
		SellBrokerage decimal.Decimal `json:"sellBrokerage"`
		BuyValue      Money           `json:"buyValue"`
		SellValue     Money           `json:"sellValue"`
		PnL           Money           `json:"pnl"`
		Type          TradeType       `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Trade(temp)
	return nil
}

// Equal reports whether two trades carry the same values.
func (t Trade) Equal(o Trade) bool {
	return t.Date == o.Date &&
		t.Instrument == o.Instrument &&
		t.Quantity == o.Quantity &&
		t.BuyPrice.Equal(o.BuyPrice) &&
		t.SellPrice.Equal(o.SellPrice) &&
		t.Buyer == o.Buyer &&
		t.Seller == o.Seller &&
		t.BuyBrokerage.Equal(o.BuyBrokerage) &&
		t.SellBrokerage.Equal(o.SellBrokerage) &&
		t.BuyValue.Equal(o.BuyValue) &&
		t.SellValue.Equal(o.SellValue) &&
		t.PnL.Equal(o.PnL) &&
		t.Type == o.Type
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %s x%d %s->%s pnl %s", t.Date, t.Instrument, t.Quantity, t.Buyer, t.Seller, t.PnL.Fixed())
}
