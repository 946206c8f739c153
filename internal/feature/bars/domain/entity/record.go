package entity

// BarRecord is one source row as delivered by an upstream export, before any
// null elision. Pointer fields distinguish "absent" from a real zero value.
type BarRecord struct {
	Contract  string
	Timestamp int64 // Epoch milliseconds (UTC)
	Open      *float64
	High      *float64
	Low       *float64
	Close     *float64
	// Indicators holds precomputed indicator values keyed by column name.
	// Columns absent from the export simply have no entry.
	Indicators map[string]*float64
}
