package adapters

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade_review_backend/internal/feature/bars/domain"
)

// writeCSV writes a temporary export file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSource_ReadBars(t *testing.T) {
	t.Parallel()

	source := NewCSVSource()

	t.Run("success: full rows with indicators", func(t *testing.T) {
		t.Parallel()

		path := writeCSV(t, "contract,timestamp,open,high,low,close,vwap,rsi_14_wilder\n"+
			"CLZ4_ohlcv1m,1729771800000,71.22,71.32,71.21,71.25,71.28,54.2\n"+
			"CLZ4_ohlcv1m,1729771860000,71.25,71.28,71.12,71.22,71.26,\n")

		records, err := source.ReadBars(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, records, 2)

		first := records[0]
		assert.Equal(t, "CLZ4_ohlcv1m", first.Contract)
		assert.Equal(t, int64(1729771800000), first.Timestamp)
		require.NotNil(t, first.Open)
		assert.Equal(t, 71.22, *first.Open)
		require.NotNil(t, first.Indicators["vwap"])
		assert.Equal(t, 71.28, *first.Indicators["vwap"])

		second := records[1]
		assert.Nil(t, second.Indicators["rsi_14_wilder"], "empty cell should stay nil")
	})

	t.Run("success: NaN cells become nil", func(t *testing.T) {
		t.Parallel()

		path := writeCSV(t, "contract,timestamp,open,high,low,close,atr_14\n"+
			"CLZ4_ohlcv1m,1729771800000,71.22,71.32,71.21,71.25,NaN\n")

		records, err := source.ReadBars(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].Indicators["atr_14"])
	})

	t.Run("success: malformed rows are skipped", func(t *testing.T) {
		t.Parallel()

		path := writeCSV(t, "contract,timestamp,open,high,low,close\n"+
			"CLZ4_ohlcv1m,not-a-timestamp,71.22,71.32,71.21,71.25\n"+
			",1729771800000,71.22,71.32,71.21,71.25\n"+
			"CLZ4_ohlcv1m,1729771860000,71.25,71.28,71.12,71.22\n")

		records, err := source.ReadBars(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, records, 1, "only the well-formed row should survive")
		assert.Equal(t, int64(1729771860000), records[0].Timestamp)
	})

	t.Run("error: missing file is SourceUnavailable", func(t *testing.T) {
		t.Parallel()

		_, err := source.ReadBars(context.Background(), "/nonexistent/export.csv")
		require.Error(t, err)

		var unavailable *domain.SourceUnavailableError
		assert.True(t, errors.As(err, &unavailable))
	})

	t.Run("error: header without timestamp column", func(t *testing.T) {
		t.Parallel()

		path := writeCSV(t, "contract,open,high,low,close\nCLZ4_ohlcv1m,1,2,0,1\n")

		_, err := source.ReadBars(context.Background(), path)
		require.Error(t, err)

		var colErr *domain.ColumnReadError
		require.True(t, errors.As(err, &colErr))
		assert.Equal(t, "timestamp", colErr.Column)
	})
}
