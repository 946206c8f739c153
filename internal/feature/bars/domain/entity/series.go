package entity

// IndicatorPoint is one sample of one indicator series.
// Value is never NaN: rows with missing or NaN values are dropped
// before a point is produced.
type IndicatorPoint struct {
	Time  int64   `json:"time"`  // Sample timestamp in epoch seconds (UTC)
	Value float64 `json:"value"` // Indicator value at that time
}

// IndicatorSeries is a chart-ready indicator line. Pane tells the frontend
// whether the series is drawn over the price chart ("price") or in its own
// region ("rsi", "atr").
type IndicatorSeries struct {
	ID   string           `json:"id"`   // Stable key, equal to the source column name
	Name string           `json:"name"` // Human-readable label derived from ID
	Kind string           `json:"kind"` // Render hint, always "line"
	Pane string           `json:"pane"` // "price" | "rsi" | "atr"
	Data []IndicatorPoint `json:"data"` // Samples ordered ascending by time
}
