// Package brokerbook tracks securities trades executed on behalf of clients,
// maintains each client's running position per instrument, and answers
// aggregate queries (totals, profit and loss, holdings valuation) over the
// accumulated ledger.
//
// The central type is the [Book]: an append-only trade ledger, a derived
// holdings store kept consistent with the ledger by the same operation that
// appends a trade, and a client registry holding per-client brokerage rates.
// All three collections are persisted together on every mutation and reloaded
// at startup.
package brokerbook
