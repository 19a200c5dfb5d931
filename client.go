package brokerbook

import (
	"github.com/shopspring/decimal"
)

// MarketID is the synthetic counterparty on the opposite side of every
// recorded trade. It represents "the exchange" and is never registered, so it
// never pays brokerage.
const MarketID = "MARKET"

// Client is a registered account holder.
//
// A client is immutable once created except by explicit re-registration, and
// is never deleted in normal operation.
type Client struct {
	ID        string          // unique key, as typed by the broker
	Name      string          // display name
	Brokerage decimal.Decimal // percentage fee applied to both trade legs
}

// clientRecord is the persisted shape of a client, keyed by id in clients.json.
type clientRecord struct {
	Name      string          `json:"name"`
	Brokerage decimal.Decimal `json:"brokerage"`
}
