package brokerbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestStore_RoundTrip records against a durable book, reopens the directory,
// and checks the reloaded state matches.
func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	b, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Register("amit", "Amit Shah", 1.0); err != nil {
		t.Fatal(err)
	}
	want := record(t, b, "amit", Buy, "TCS", 10, 100, 110, "2026-08-10")

	reloaded, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() after writes failed: %v", err)
	}

	c, ok := reloaded.Lookup("amit")
	if !ok {
		t.Fatal("client amit not reloaded")
	}
	if c.Name != "Amit Shah" || c.Brokerage.String() != "1" {
		t.Errorf("reloaded client = %+v", c)
	}

	var got []Trade
	for _, trade := range reloaded.Trades(AcceptAll) {
		got = append(got, trade)
	}
	if len(got) != 1 || !got[0].Equal(want) {
		t.Errorf("reloaded ledger = %v, want [%v]", got, want)
	}
	if n := reloaded.NetPosition("amit", "TCS"); n != 10 {
		t.Errorf("reloaded NetPosition = %d, want 10", n)
	}
}

// TestOpen_MissingFiles checks that a fresh directory opens as an empty book.
func TestOpen_MissingFiles(t *testing.T) {
	b, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ids := b.ClientIDs(); len(ids) != 0 {
		t.Errorf("fresh book has clients: %v", ids)
	}
	for range b.Trades(AcceptAll) {
		t.Fatal("fresh book has trades")
	}
}

// TestOpen_CorruptHoldings checks both corruption detections: holdings
// without a ledger, and holdings that do not replay from the ledger.
func TestOpen_CorruptHoldings(t *testing.T) {
	t.Run("holdings without ledger", func(t *testing.T) {
		dir := t.TempDir()
		holdings := `{"amit": {"TCS": 10}}`
		if err := os.WriteFile(filepath.Join(dir, "holdings.json"), []byte(holdings), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Open(dir); err == nil || !strings.Contains(err.Error(), "corrupt") {
			t.Errorf("Open() = %v, want a corruption error", err)
		}
	})

	t.Run("drifted holdings", func(t *testing.T) {
		dir := t.TempDir()
		b, err := Open(dir)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := b.Register("amit", "Amit Shah", 1.0); err != nil {
			t.Fatal(err)
		}
		record(t, b, "amit", Buy, "TCS", 10, 100, 110, "2026-08-10")

		holdings := `{"amit": {"TCS": 99}, "MARKET": {"TCS": -99}}`
		if err := os.WriteFile(filepath.Join(dir, "holdings.json"), []byte(holdings), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Open(dir); err == nil || !strings.Contains(err.Error(), "corrupt") {
			t.Errorf("Open() = %v, want a corruption error", err)
		}
	})
}

// TestRecover_RepairsDrift loads a drifted directory with Recover and
// rebuilds the holdings from the ledger.
func TestRecover_RepairsDrift(t *testing.T) {
	dir := t.TempDir()
	b, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Register("amit", "Amit Shah", 1.0); err != nil {
		t.Fatal(err)
	}
	record(t, b, "amit", Buy, "TCS", 10, 100, 110, "2026-08-10")

	holdings := `{"amit": {"TCS": 99}, "MARKET": {"TCS": -99}}`
	if err := os.WriteFile(filepath.Join(dir, "holdings.json"), []byte(holdings), 0644); err != nil {
		t.Fatal(err)
	}

	recovered, err := Recover(dir)
	if err != nil {
		t.Fatalf("Recover() failed: %v", err)
	}
	if err := recovered.RebuildHoldings(); err != nil {
		t.Fatalf("RebuildHoldings() failed: %v", err)
	}

	// the repaired directory opens normally again
	repaired, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() after repair failed: %v", err)
	}
	if n := repaired.NetPosition("amit", "TCS"); n != 10 {
		t.Errorf("NetPosition after repair = %d, want 10", n)
	}
}
