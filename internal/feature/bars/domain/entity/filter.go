package entity

// DateRange holds the inclusive UTC boundaries derived from request date
// strings. A nil bound means unbounded on that side.
type DateRange struct {
	Start *int64 // First included epoch second (00:00:00 UTC of the start day)
	End   *int64 // Last included epoch second (23:59:59 UTC of the end day)
}

// BarFilter is the predicate set applied to the bar source. Timestamps are
// compared in milliseconds because that is the unit the source stores.
type BarFilter struct {
	Contract    string // Equality filter on the contract column; empty means no filter
	StartMillis *int64 // timestamp >= StartMillis when set
	EndMillis   *int64 // timestamp <= EndMillis when set
}

// Millis converts the range to a millisecond filter for the given contract.
func (r DateRange) Millis(contract string) BarFilter {
	f := BarFilter{Contract: contract}
	if r.Start != nil {
		ms := *r.Start * 1000
		f.StartMillis = &ms
	}
	if r.End != nil {
		ms := *r.End * 1000
		f.EndMillis = &ms
	}
	return f
}
