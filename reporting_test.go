package brokerbook

import (
	"errors"
	"testing"
)

func TestSummaryForClient(t *testing.T) {
	b := newTestBook(t)
	record(t, b, "amit", Buy, "TCS", 10, 100, 110, "2026-08-10")
	record(t, b, "amit", Sell, "TCS", 5, 100, 120, "2026-08-11")
	// ravi's trade must not leak into amit's summary
	record(t, b, "ravi", Buy, "INFY", 10, 10, 10, "2026-08-11")

	s := b.SummaryForClient("amit", Buy)
	if !s.Known {
		t.Fatal("SummaryForClient(amit) reported unknown")
	}
	if s.Trades != 2 {
		t.Errorf("Trades = %d, want 2", s.Trades)
	}
	if got, want := s.TotalBuy.Fixed(), "1010.00"; got != want {
		t.Errorf("TotalBuy = %s, want %s", got, want)
	}
	// 5 * 120 * (1 - 1/100) = 594
	if got, want := s.TotalSell.Fixed(), "594.00"; got != want {
		t.Errorf("TotalSell = %s, want %s", got, want)
	}
	if got, want := s.PnL.Fixed(), "184.00"; got != want {
		t.Errorf("PnL = %s, want %s", got, want)
	}
}

func TestSummaryForClient_Unknown(t *testing.T) {
	b := newTestBook(t)
	s := b.SummaryForClient("ghost", Buy)
	if s.Known {
		t.Error("SummaryForClient(ghost) reported known")
	}
	if s.Trades != 0 || !s.PnL.IsZero() {
		t.Errorf("unknown client summary is not zeroed: %+v", s)
	}
}

func TestSummaryForClient_NoTrades(t *testing.T) {
	b := newTestBook(t)
	s := b.SummaryForClient("amit", Buy)
	if !s.Known {
		t.Fatal("SummaryForClient(amit) reported unknown")
	}
	if s.Trades != 0 || !s.TotalBuy.IsZero() || !s.TotalSell.IsZero() || !s.PnL.IsZero() {
		t.Errorf("summary without trades is not zeroed: %+v", s)
	}
}

// fixedQuoter serves canned quotes for the valuation tests.
type fixedQuoter map[string][2]float64

func (q fixedQuoter) Quote(symbol string) (current, previous float64) {
	v := q[symbol]
	return v[0], v[1]
}

func TestRangeReport(t *testing.T) {
	b := newTestBook(t)
	record(t, b, "amit", Buy, "TCS", 10, 100, 110, "2026-08-09")
	record(t, b, "amit", Buy, "TCS", 10, 100, 110, "2026-08-10")
	record(t, b, "amit", Sell, "TCS", 5, 100, 120, "2026-08-12")
	record(t, b, "ravi", Buy, "INFY", 10, 10, 10, "2026-08-10")

	quotes := fixedQuoter{"TCS": {105.5, 104}}
	r, err := b.RangeReport("amit", MustParse("2026-08-10"), MustParse("2026-08-12"), quotes)
	if err != nil {
		t.Fatal(err)
	}

	// both ends are included, the 08-09 trade is not
	if len(r.Trades) != 2 {
		t.Fatalf("got %d trades, want 2", len(r.Trades))
	}
	if got, want := r.TotalBuy.Fixed(), "1010.00"; got != want {
		t.Errorf("TotalBuy = %s, want %s", got, want)
	}
	if got, want := r.TotalSell.Fixed(), "594.00"; got != want {
		t.Errorf("TotalSell = %s, want %s", got, want)
	}

	// holdings are valued over the whole book, not just the range: 10+10-5
	if len(r.Holdings) != 1 {
		t.Fatalf("got %d holdings, want 1", len(r.Holdings))
	}
	h := r.Holdings[0]
	if h.Instrument != "TCS" || h.Quantity != 15 {
		t.Errorf("holding = %s x%d, want TCS x15", h.Instrument, h.Quantity)
	}
	if got, want := h.Current.Fixed(), "105.50"; got != want {
		t.Errorf("Current = %s, want %s", got, want)
	}
	if got, want := h.Previous.Fixed(), "104.00"; got != want {
		t.Errorf("Previous = %s, want %s", got, want)
	}
	if got, want := h.Value.Fixed(), "1582.50"; got != want {
		t.Errorf("Value = %s, want %s", got, want)
	}
}

func TestRangeReport_Errors(t *testing.T) {
	b := newTestBook(t)
	from, to := MustParse("2026-08-10"), MustParse("2026-08-12")

	if _, err := b.RangeReport("ghost", from, to, nil); err == nil {
		t.Error("RangeReport accepted an unknown client")
	} else {
		var uerr UnknownClientError
		if !errors.As(err, &uerr) {
			t.Errorf("error = %v, want UnknownClientError", err)
		}
	}

	for _, tc := range []struct {
		name     string
		from, to Date
	}{
		{"zero start", Date{}, to},
		{"zero end", from, Date{}},
		{"inverted range", to, from},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.RangeReport("amit", tc.from, tc.to, nil)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error = %v, want a ValidationError", err)
			}
		})
	}
}

// TestRangeReport_EmptyRange checks that a range without trades is a normal,
// empty report.
func TestRangeReport_EmptyRange(t *testing.T) {
	b := newTestBook(t)
	record(t, b, "amit", Buy, "TCS", 10, 100, 110, "2026-01-05")

	r, err := b.RangeReport("amit", MustParse("2026-08-10"), MustParse("2026-08-12"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Trades) != 0 {
		t.Errorf("got %d trades, want none", len(r.Trades))
	}
	if !r.TotalBuy.IsZero() || !r.TotalSell.IsZero() || !r.PnL.IsZero() {
		t.Errorf("empty range totals are not zeroed: %+v", r)
	}
	// the nil quoter values the held position at zero
	if len(r.Holdings) != 1 || !r.Holdings[0].Value.IsZero() {
		t.Errorf("Holdings = %+v, want one zero-valued TCS position", r.Holdings)
	}
}

func TestDateSlice(t *testing.T) {
	b := newTestBook(t)
	record(t, b, "amit", Buy, "TCS", 10, 100, 110, "2026-08-10")
	record(t, b, "ravi", Buy, "INFY", 10, 10, 10, "2026-08-10")
	record(t, b, "amit", Buy, "TCS", 10, 100, 110, "2026-08-11")

	s := b.DateSlice(MustParse("2026-08-10"))
	if len(s.Trades) != 2 {
		t.Fatalf("got %d trades, want 2", len(s.Trades))
	}
	// amit: 10*100*1.01 = 1010; ravi: 10*10*1.005 = 100.50
	if got, want := s.TotalBuy.Fixed(), "1110.50"; got != want {
		t.Errorf("TotalBuy = %s, want %s", got, want)
	}
	if got, want := s.TotalSell.Fixed(), "1200.00"; got != want {
		t.Errorf("TotalSell = %s, want %s", got, want)
	}
}

func TestPeriodSummary(t *testing.T) {
	b := newTestBook(t)
	today := Today()
	b.RecordTrade("amit", Buy, "TCS", 1, 10, 10, NSE, today)
	b.RecordTrade("amit", Buy, "TCS", 1, 10, 10, NSE, today.Add(-3))
	b.RecordTrade("amit", Buy, "TCS", 1, 10, 10, NSE, today.Add(-10))

	p := b.PeriodSummary()
	if len(p.Daily.Trades) != 1 {
		t.Errorf("Daily has %d trades, want 1", len(p.Daily.Trades))
	}
	if len(p.Weekly.Trades) != 2 {
		t.Errorf("Weekly has %d trades, want 2", len(p.Weekly.Trades))
	}
	if p.Weekly.From != today.Add(-7) || p.Weekly.To != today {
		t.Errorf("Weekly range = %s..%s, want %s..%s", p.Weekly.From, p.Weekly.To, today.Add(-7), today)
	}
}
