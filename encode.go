package brokerbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeTrade marshals a single trade to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeTrade(w io.Writer, t Trade) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal trade: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write trade: %w", err)
	}
	return nil
}

// EncodeTrades persists the ledger to an io.Writer in JSONL format, one
// trade per line, with a canonical key order within each line.
func EncodeTrades(w io.Writer, trades []Trade) error {
	for _, t := range trades {
		if err := EncodeTrade(w, t); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTrades reads a stream of JSONL data and decodes each line into a
// trade. The returned slice preserves the stored order.
func DecodeTrades(r io.Reader) ([]Trade, error) {
	trades := make([]Trade, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var t Trade
		if err := json.Unmarshal(line, &t); err != nil {
			return nil, fmt.Errorf("could not decode trade line %q: %w", string(line), err)
		}
		trades = append(trades, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return trades, nil
}

// EncodeClients persists the client registry as a JSON object keyed by
// client id. Map keys are sorted by the encoder, so the output is canonical.
func EncodeClients(w io.Writer, clients map[string]Client) error {
	records := make(map[string]clientRecord, len(clients))
	for id, c := range clients {
		records[id] = clientRecord{Name: c.Name, Brokerage: c.Brokerage}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(records)
}

// DecodeClients reads the client registry written by EncodeClients.
func DecodeClients(r io.Reader) (map[string]Client, error) {
	records := make(map[string]clientRecord)
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("could not decode clients: %w", err)
	}
	clients := make(map[string]Client, len(records))
	for id, rec := range records {
		clients[id] = Client{ID: id, Name: rec.Name, Brokerage: rec.Brokerage}
	}
	return clients, nil
}

// EncodeHoldings persists the holdings store as a nested JSON object,
// client id to instrument to net quantity.
func EncodeHoldings(w io.Writer, holdings map[string]map[string]int64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(holdings)
}

// DecodeHoldings reads the holdings store written by EncodeHoldings.
func DecodeHoldings(r io.Reader) (map[string]map[string]int64, error) {
	holdings := make(map[string]map[string]int64)
	if err := json.NewDecoder(r).Decode(&holdings); err != nil {
		return nil, fmt.Errorf("could not decode holdings: %w", err)
	}
	return holdings, nil
}
