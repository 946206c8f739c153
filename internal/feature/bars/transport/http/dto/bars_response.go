// Package dto defines data transfer objects for the bars HTTP API.
package dto

import "trade_review_backend/internal/feature/bars/domain/entity"

// BarsResponse is the success payload of GET /bars.
type BarsResponse struct {
	Candles []entity.Candle `json:"candles"`
}

// SeriesResponse is the success payload of GET /series.
type SeriesResponse struct {
	Series []entity.IndicatorSeries `json:"series"`
}

// ErrorResponse is the client-error payload returned with a 400 status.
// Message is human-readable and never exposes internals beyond the
// configured source path.
type ErrorResponse struct {
	Message string `json:"message"`
}
