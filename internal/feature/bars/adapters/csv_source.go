package adapters

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"trade_review_backend/internal/feature/bars/domain"
	"trade_review_backend/internal/feature/bars/domain/entity"
	"trade_review_backend/internal/feature/bars/usecase"
)

// csvSource reads bar records from a CSV export produced by the upstream
// indicator pipeline. The first row is a header naming the columns; any
// column that is not contract/timestamp/OHLC is treated as an indicator.
type csvSource struct{}

var _ usecase.BarSource = (*csvSource)(nil)

// NewCSVSource はCSVエクスポートを読み込むBarSourceを生成します。
func NewCSVSource() *csvSource {
	return &csvSource{}
}

// ReadBars は指定されたCSVファイルの全行を読み込みます。
// 解析できない行はスキップしてログに残し、残りの行の処理を続けます。
func (s *csvSource) ReadBars(ctx context.Context, path string) ([]entity.BarRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.SourceUnavailableError{Path: path}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, required := range []string{"contract", "timestamp"} {
		if _, ok := index[required]; !ok {
			return nil, &domain.ColumnReadError{Column: required}
		}
	}

	records := make([]entity.BarRecord, 0)
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		rec, err := parseRow(header, row)
		if err != nil {
			slog.Warn("skipping malformed row", "line", line, "error", err)
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseRow maps one CSV row onto a BarRecord. Empty cells and NaN become
// nil so the distinction survives into the nullable table columns.
func parseRow(header, row []string) (entity.BarRecord, error) {
	if len(row) != len(header) {
		return entity.BarRecord{}, fmt.Errorf("expected %d fields, got %d", len(header), len(row))
	}

	rec := entity.BarRecord{Indicators: make(map[string]*float64)}
	for i, name := range header {
		cell := strings.TrimSpace(row[i])
		switch name {
		case "contract":
			rec.Contract = cell
		case "timestamp":
			ts, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				return entity.BarRecord{}, fmt.Errorf("timestamp %q: %w", cell, err)
			}
			rec.Timestamp = ts
		case "open":
			rec.Open = parseCell(cell)
		case "high":
			rec.High = parseCell(cell)
		case "low":
			rec.Low = parseCell(cell)
		case "close":
			rec.Close = parseCell(cell)
		default:
			rec.Indicators[name] = parseCell(cell)
		}
	}

	if rec.Contract == "" {
		return entity.BarRecord{}, fmt.Errorf("empty contract")
	}
	return rec, nil
}

// parseCell parses one optional float cell. Empty, unparsable and NaN
// cells all map to nil.
func parseCell(cell string) *float64 {
	if cell == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}
