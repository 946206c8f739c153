// Package entity defines the domain models for the bars feature.
package entity

// Candle represents one OHLC (Open, High, Low, Close) price bar for a
// contract at a specific time interval.
type Candle struct {
	Time  int64   `json:"time"`  // Bar timestamp in epoch seconds (UTC)
	Open  float64 `json:"open"`  // Opening price
	High  float64 `json:"high"`  // Highest price during this period
	Low   float64 `json:"low"`   // Lowest price during this period
	Close float64 `json:"close"` // Closing price
}
