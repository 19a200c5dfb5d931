package brokerbook

import "testing"

// newTestBook returns an in-memory book with two registered clients:
// "amit" paying 1% brokerage and "ravi" paying 0.5%.
func newTestBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook()
	if _, err := b.Register("amit", "Amit Shah", 1.0); err != nil {
		t.Fatalf("Register(amit) failed: %v", err)
	}
	if _, err := b.Register("ravi", "Ravi Kumar", 0.5); err != nil {
		t.Fatalf("Register(ravi) failed: %v", err)
	}
	return b
}

// record is a shorthand for RecordTrade that fails the test on error.
func record(t *testing.T, b *Book, client string, mode TradeMode, instrument string, qty int64, bp, sp float64, day string) Trade {
	t.Helper()
	trade, err := b.RecordTrade(client, mode, instrument, qty, bp, sp, NSE, MustParse(day))
	if err != nil {
		t.Fatalf("RecordTrade(%s %s %s) failed: %v", client, mode, instrument, err)
	}
	return trade
}
