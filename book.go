package brokerbook

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Book holds the three collections of the broker's records: the client
// registry, the append-only trade ledger, and the derived holdings store.
//
// Holdings are a cache over the ledger: for every client and instrument the
// stored net quantity equals the signed sum of quantities over the full
// ledger (+quantity where the client is buyer, -quantity where seller).
// Every operation that appends a trade updates holdings in the same step and
// persists all three collections together.
type Book struct {
	clients  map[string]Client
	trades   []Trade
	holdings map[string]map[string]int64 // client id -> instrument -> net quantity
	store    *DirStore                   // nil keeps the book in memory only
}

// NewBook creates an empty in-memory book. It is not persisted; use Open for
// a durable one.
func NewBook() *Book {
	return &Book{
		clients:  make(map[string]Client),
		trades:   make([]Trade, 0),
		holdings: make(map[string]map[string]int64),
	}
}

// Open loads the book from the data directory, creating empty collections for
// files that do not exist yet. It fails if the stored holdings cannot be
// reconciled with the ledger, since that indicates a corrupt or partial
// write.
func Open(dir string) (*Book, error) {
	store := NewDirStore(dir)
	clients, trades, holdings, err := store.Load()
	if err != nil {
		return nil, err
	}
	b := &Book{clients: clients, trades: trades, holdings: holdings, store: store}
	b.stableSort()
	if err := b.Reconcile(); err != nil {
		return nil, fmt.Errorf("data directory %q is corrupt: %w", dir, err)
	}
	return b, nil
}

// Recover loads the book like Open but skips reconciliation, so that a
// drifted holdings store can still be read and rebuilt. The ledger stays the
// source of truth; call RebuildHoldings to repair.
func Recover(dir string) (*Book, error) {
	store := NewDirStore(dir)
	clients, trades, holdings, err := store.Load()
	if err != nil {
		return nil, err
	}
	b := &Book{clients: clients, trades: trades, holdings: holdings, store: store}
	b.stableSort()
	return b, nil
}

// Register inserts or overwrites a client record and persists the registry.
// The brokerage rate is a percentage applied to both legs of the client's
// trades.
func (b *Book) Register(id, name string, brokerage float64) (Client, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return Client{}, validationf("client id is required")
	}
	if name == "" {
		return Client{}, validationf("client name is required")
	}
	if math.IsNaN(brokerage) || math.IsInf(brokerage, 0) {
		return Client{}, validationf("brokerage rate must be a finite number")
	}
	if brokerage < 0 {
		return Client{}, validationf("brokerage rate must not be negative, got %v", brokerage)
	}

	client := Client{ID: id, Name: name, Brokerage: decimal.NewFromFloat(brokerage)}
	previous, existed := b.clients[id]
	b.clients[id] = client
	if err := b.persist(); err != nil {
		// keep in-memory and durable state in sync
		if existed {
			b.clients[id] = previous
		} else {
			delete(b.clients, id)
		}
		return Client{}, err
	}
	return client, nil
}

// Lookup returns the client record for an id. A missing id is a valid,
// expected outcome: the synthetic market counterparty is never registered.
func (b *Book) Lookup(id string) (Client, bool) {
	c, ok := b.clients[id]
	return c, ok
}

// ClientIDs returns all registered client ids in a stable sorted order.
func (b *Book) ClientIDs() []string {
	ids := slices.Collect(maps.Keys(b.clients))
	slices.Sort(ids)
	return ids
}

// brokerageRate returns the rate for a trade side: the registered client's
// rate, or zero for any unregistered party (the market never pays brokerage).
func (b *Book) brokerageRate(id string) decimal.Decimal {
	if c, ok := b.clients[id]; ok {
		return c.Brokerage
	}
	return decimal.Zero
}

// RecordTrade validates a trade intent, computes the brokerage-adjusted
// values, appends the trade to the ledger, updates both parties' holdings,
// and persists all collections together. Either every precondition holds and
// the whole update happens, or nothing is written.
//
// The monetary values are, rounded half-up to two decimal places:
//
//	buyValue  = quantity * buyPrice  * (1 + buyBrokerage/100)
//	sellValue = quantity * sellPrice * (1 - sellBrokerage/100)
//	pnl       = sellValue - buyValue
//
// Brokerage inflates the buy cost and deflates the sell proceeds regardless
// of which side is the synthetic market, so a registered client is penalized
// by both legs. This asymmetry is inherited from the original computation
// and preserved verbatim; see the brokerage documentation topic.
//
// A zero date records the trade as of today. The returned Trade carries the
// computed fields so the caller can display a confirmation without reading
// storage back.
func (b *Book) RecordTrade(clientID string, mode TradeMode, instrument string, quantity int64, buyPrice, sellPrice float64, typ TradeType, day Date) (Trade, error) {
	if _, ok := b.clients[clientID]; !ok {
		return Trade{}, UnknownClientError{ID: clientID}
	}
	instrument = strings.ToUpper(strings.TrimSpace(instrument))
	if instrument == "" {
		return Trade{}, validationf("instrument symbol is required")
	}
	if quantity <= 0 {
		return Trade{}, validationf("quantity must be a positive integer, got %d", quantity)
	}
	for _, p := range []struct {
		label string
		value float64
	}{{"buy price", buyPrice}, {"sell price", sellPrice}} {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return Trade{}, validationf("%s must be a finite number", p.label)
		}
		if p.value < 0 {
			return Trade{}, validationf("%s must not be negative, got %v", p.label, p.value)
		}
	}
	if _, err := ParseTradeType(string(typ)); err != nil {
		return Trade{}, err
	}
	if day.IsZero() {
		day = Today()
	}

	buyer, seller := clientID, MarketID
	if mode == Sell {
		buyer, seller = MarketID, clientID
	}
	bb := b.brokerageRate(buyer)
	sb := b.brokerageRate(seller)

	// Prices are recorded to the currency fraction; values are computed from
	// the recorded prices so that a reload reproduces them exactly.
	qty := decimal.NewFromInt(quantity)
	bp := M(buyPrice).Round()
	sp := M(sellPrice).Round()
	buyValue := M(qty.Mul(bp.Decimal()).Mul(decimal.New(1, 0).Add(bb.Div(hundred)))).Round()
	sellValue := M(qty.Mul(sp.Decimal()).Mul(decimal.New(1, 0).Sub(sb.Div(hundred)))).Round()

	trade := Trade{
		Date:          day,
		Instrument:    instrument,
		Quantity:      quantity,
		BuyPrice:      bp,
		SellPrice:     sp,
		Buyer:         buyer,
		Seller:        seller,
		BuyBrokerage:  bb,
		SellBrokerage: sb,
		BuyValue:      buyValue,
		SellValue:     sellValue,
		PnL:           sellValue.Sub(buyValue),
		Type:          typ,
	}

	b.trades = append(b.trades, trade)
	b.stableSort()
	b.applyHoldings(trade, +1)
	if err := b.persist(); err != nil {
		// roll back so in-memory state still matches durable state
		b.applyHoldings(trade, -1)
		b.removeTrade(trade)
		return Trade{}, err
	}
	return trade, nil
}

// applyHoldings adds sign*trade to the holdings store: the buyer gains the
// quantity, the seller loses it. A resulting zero entry is kept, re-zeroing
// is a meaningful history point.
func (b *Book) applyHoldings(t Trade, sign int64) {
	for _, side := range []struct {
		id    string
		delta int64
	}{{t.Buyer, t.Quantity}, {t.Seller, -t.Quantity}} {
		positions, ok := b.holdings[side.id]
		if !ok {
			positions = make(map[string]int64)
			b.holdings[side.id] = positions
		}
		positions[t.Instrument] += sign * side.delta
	}
}

// removeTrade removes the last occurrence of a trade from the ledger.
// Only used to roll back a failed persist.
func (b *Book) removeTrade(t Trade) {
	for i := len(b.trades) - 1; i >= 0; i-- {
		if b.trades[i].Equal(t) {
			b.trades = slices.Delete(b.trades, i, i+1)
			return
		}
	}
}

// NetPosition returns the signed net quantity a client holds of an
// instrument, zero when absent.
func (b *Book) NetPosition(clientID, instrument string) int64 {
	return b.holdings[clientID][strings.ToUpper(instrument)]
}

// Position is a client's net quantity of a single instrument.
type Position struct {
	Instrument string
	Quantity   int64
}

// Holdings returns a client's positions sorted by instrument. Zero entries
// are kept: nothing to value, but a meaningful history point.
func (b *Book) Holdings(clientID string) []Position {
	instruments := slices.Collect(maps.Keys(b.holdings[clientID]))
	slices.Sort(instruments)
	positions := make([]Position, 0, len(instruments))
	for _, instrument := range instruments {
		positions = append(positions, Position{Instrument: instrument, Quantity: b.holdings[clientID][instrument]})
	}
	return positions
}

// Trades returns an iterator over the ledger in chronological order,
// yielding trades accepted by any of the filters.
func (b *Book) Trades(filters ...func(Trade) bool) iter.Seq2[int, Trade] {
	return func(yield func(int, Trade) bool) {
		for i, t := range b.trades {
			accept := false
			for _, filter := range filters {
				if filter(t) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// AcceptAll is a filter that accepts every trade.
func AcceptAll(Trade) bool { return true }

// ByClient returns a filter accepting trades where the client is buyer or seller.
func ByClient(id string) func(Trade) bool {
	return func(t Trade) bool { return t.Involves(id) }
}

// ByDay returns a filter accepting trades dated exactly on the given day.
func ByDay(day Date) func(Trade) bool {
	return func(t Trade) bool { return t.Date == day }
}

// ByRange returns a filter accepting trades dated within [from, to], both
// ends included.
func ByRange(from, to Date) func(Trade) bool {
	return func(t Trade) bool { return !t.Date.Before(from) && !t.Date.After(to) }
}

// TradeDates returns the distinct dates on which trades were recorded,
// sorted ascending. It is used to populate date selection inputs.
func (b *Book) TradeDates() []Date {
	seen := make(map[Date]struct{})
	var dates []Date
	for _, t := range b.trades {
		if _, ok := seen[t.Date]; !ok {
			seen[t.Date] = struct{}{}
			dates = append(dates, t.Date)
		}
	}
	slices.SortFunc(dates, func(a, c Date) int {
		switch {
		case a.Before(c):
			return -1
		case a.After(c):
			return 1
		default:
			return 0
		}
	})
	return dates
}

// stableSort sorts the ledger by trade date. The sort is stable, trades on
// the same day keep their original relative order.
func (b *Book) stableSort() {
	slices.SortStableFunc(b.trades, func(x, y Trade) int {
		switch {
		case x.Date.Before(y.Date):
			return -1
		case x.Date.After(y.Date):
			return 1
		default:
			return 0
		}
	})
}

// replayHoldings recomputes the holdings store from a full replay of the
// ledger alone.
func (b *Book) replayHoldings() map[string]map[string]int64 {
	holdings := make(map[string]map[string]int64)
	for _, t := range b.trades {
		for _, side := range []struct {
			id    string
			delta int64
		}{{t.Buyer, t.Quantity}, {t.Seller, -t.Quantity}} {
			positions, ok := holdings[side.id]
			if !ok {
				positions = make(map[string]int64)
				holdings[side.id] = positions
			}
			positions[t.Instrument] += side.delta
		}
	}
	return holdings
}

// Reconcile verifies that the stored holdings equal a full replay of the
// ledger. Holdings for parties or instruments absent from the replay must be
// zero; any other difference is an error.
func (b *Book) Reconcile() error {
	replayed := b.replayHoldings()
	for id, positions := range b.holdings {
		for instrument, qty := range positions {
			if got := replayed[id][instrument]; got != qty {
				return fmt.Errorf("holdings for %s/%s is %d but the ledger replays to %d", id, instrument, qty, got)
			}
		}
	}
	for id, positions := range replayed {
		for instrument, qty := range positions {
			if qty != 0 {
				if _, ok := b.holdings[id][instrument]; !ok {
					return fmt.Errorf("ledger holds %d of %s for %s but the holdings store has no entry", qty, instrument, id)
				}
			}
		}
	}
	return nil
}

// RebuildHoldings replaces the holdings store with a full replay of the
// ledger and persists the result.
func (b *Book) RebuildHoldings() error {
	previous := b.holdings
	b.holdings = b.replayHoldings()
	if err := b.persist(); err != nil {
		b.holdings = previous
		return err
	}
	return nil
}

// persist durably writes the three collections together. A book without a
// store is memory only.
func (b *Book) persist() error {
	if b.store == nil {
		return nil
	}
	return b.store.Save(b.clients, b.trades, b.holdings)
}
