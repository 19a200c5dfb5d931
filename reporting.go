package brokerbook

// This file is the read side of the book: pure aggregations over the ledger
// and the holdings store. Nothing here mutates state, and an empty filtered
// set is a normal case producing a zeroed result, never an error.

// SummaryForClient aggregates the client's entire history: the sum of buy
// values where the client is buyer, of sell values where it is seller, and
// of profit and loss over all trades where it is either party. An
// unregistered id yields Known false; a client without trades yields a
// zeroed summary.
func (b *Book) SummaryForClient(clientID string, mode TradeMode) ClientSummary {
	s := ClientSummary{ClientID: clientID, Mode: mode}
	if _, ok := b.clients[clientID]; !ok {
		return s
	}
	s.Known = true
	for _, t := range b.Trades(ByClient(clientID)) {
		s.Trades++
		if t.Buyer == clientID {
			s.TotalBuy = s.TotalBuy.Add(t.BuyValue)
		}
		if t.Seller == clientID {
			s.TotalSell = s.TotalSell.Add(t.SellValue)
		}
		s.PnL = s.PnL.Add(t.PnL)
	}
	return s
}

// RangeReport filters the ledger to the client's trades within [from, to],
// both ends included, and values the client's current holdings with the
// quoter. It fails with ValidationError when from is after to and with
// UnknownClientError when the client is not registered. A range without
// trades yields an empty extract and is not an error.
//
// A nil quoter values every position at zero, like an unreachable provider.
func (b *Book) RangeReport(clientID string, from, to Date, quoter Quoter) (RangeReport, error) {
	r := RangeReport{ClientID: clientID, From: from, To: to}
	if _, ok := b.clients[clientID]; !ok {
		return r, UnknownClientError{ID: clientID}
	}
	if from.IsZero() || to.IsZero() {
		return r, validationf("both start and end dates are required")
	}
	if from.After(to) {
		return r, validationf("start date %s is after end date %s", from, to)
	}

	for _, t := range b.Trades(ByClient(clientID)) {
		if !ByRange(from, to)(t) {
			continue
		}
		r.Trades = append(r.Trades, t)
		if t.Buyer == clientID {
			r.TotalBuy = r.TotalBuy.Add(t.BuyValue)
		}
		if t.Seller == clientID {
			r.TotalSell = r.TotalSell.Add(t.SellValue)
		}
		r.PnL = r.PnL.Add(t.PnL)
	}

	if quoter == nil {
		quoter = zeroQuoter{}
	}
	for _, p := range b.Holdings(clientID) {
		current, previous := quoter.Quote(p.Instrument)
		cur := M(current).Round()
		r.Holdings = append(r.Holdings, HoldingValuation{
			Instrument: p.Instrument,
			Quantity:   p.Quantity,
			Previous:   M(previous).Round(),
			Current:    cur,
			Value:      cur.MulInt(p.Quantity).Round(),
		})
	}
	return r, nil
}

// DateSlice aggregates all clients' trades dated exactly on the given day.
func (b *Book) DateSlice(day Date) SliceSummary {
	return b.slice(day, day)
}

// PeriodSummary produces the two fixed aggregations: today, and the trailing
// week (the last 7 days, today included).
func (b *Book) PeriodSummary() PeriodSummary {
	today := Today()
	return PeriodSummary{
		Daily:  b.slice(today, today),
		Weekly: b.slice(today.Add(-7), today),
	}
}

func (b *Book) slice(from, to Date) SliceSummary {
	s := SliceSummary{From: from, To: to}
	for _, t := range b.Trades(ByRange(from, to)) {
		s.Trades = append(s.Trades, t)
		s.TotalBuy = s.TotalBuy.Add(t.BuyValue)
		s.TotalSell = s.TotalSell.Add(t.SellValue)
		s.PnL = s.PnL.Add(t.PnL)
	}
	return s
}
