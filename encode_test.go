package brokerbook

import (
	"bytes"
	"strings"
	"testing"
)

// TestEncodeTrade_CanonicalLine checks the exact ledger line format: one
// trade per line, fixed key order, decimals without quotes.
func TestEncodeTrade_CanonicalLine(t *testing.T) {
	b := newTestBook(t)
	trade := record(t, b, "amit", Buy, "TCS", 10, 100, 110, "2026-08-10")

	var buf bytes.Buffer
	if err := EncodeTrade(&buf, trade); err != nil {
		t.Fatal(err)
	}

	want := `{"date":"2026-08-10","instrument":"TCS","quantity":10,"buyPrice":100,"sellPrice":110,"buyer":"amit","seller":"MARKET","buyBrokerage":1,"sellBrokerage":0,"buyValue":1010,"sellValue":1100,"pnl":90,"type":"NSE"}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeTrade:\n got %q\nwant %q", got, want)
	}
}

func TestDecodeTrades(t *testing.T) {
	input := `{"date":"2026-08-10","instrument":"TCS","quantity":10,"buyPrice":100,"sellPrice":110,"buyer":"amit","seller":"MARKET","buyBrokerage":1,"sellBrokerage":0,"buyValue":1010,"sellValue":1100,"pnl":90,"type":"NSE"}

{"date":"2026-08-11","instrument":"INFY","quantity":5,"buyPrice":15.5,"sellPrice":0,"buyer":"ravi","seller":"MARKET","buyBrokerage":0.5,"sellBrokerage":0,"buyValue":77.89,"sellValue":0,"pnl":-77.89,"type":"BSE"}
`
	trades, err := DecodeTrades(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(trades) != 2 {
		t.Fatalf("decoded %d trades, want 2 (empty lines skipped)", len(trades))
	}
	if trades[0].Instrument != "TCS" || trades[0].Quantity != 10 {
		t.Errorf("trades[0] = %v", trades[0])
	}
	if got, want := trades[1].PnL.Fixed(), "-77.89"; got != want {
		t.Errorf("trades[1].PnL = %s, want %s", got, want)
	}
	if trades[1].Date != MustParse("2026-08-11") {
		t.Errorf("trades[1].Date = %s", trades[1].Date)
	}
}

func TestDecodeTrades_BadLine(t *testing.T) {
	if _, err := DecodeTrades(strings.NewReader("not json\n")); err == nil {
		t.Error("DecodeTrades accepted a malformed line")
	}
}

// TestTrade_JSONRoundTrip checks a recorded trade survives the ledger codec.
func TestTrade_JSONRoundTrip(t *testing.T) {
	b := newTestBook(t)
	want := record(t, b, "ravi", Sell, "RELIANCE", 7, 99.95, 101.05, "2026-08-10")

	var buf bytes.Buffer
	if err := EncodeTrades(&buf, []Trade{want}); err != nil {
		t.Fatal(err)
	}
	trades, err := DecodeTrades(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(trades) != 1 || !trades[0].Equal(want) {
		t.Errorf("round trip = %v, want %v", trades, want)
	}
}

func TestClients_RoundTrip(t *testing.T) {
	b := newTestBook(t)

	var buf bytes.Buffer
	if err := EncodeClients(&buf, b.clients); err != nil {
		t.Fatal(err)
	}
	clients, err := DecodeClients(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(clients) != 2 {
		t.Fatalf("decoded %d clients, want 2", len(clients))
	}
	c := clients["ravi"]
	if c.ID != "ravi" || c.Name != "Ravi Kumar" || c.Brokerage.String() != "0.5" {
		t.Errorf("clients[ravi] = %+v", c)
	}
}
