package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade_review_backend/internal/feature/bars/domain"
	"trade_review_backend/internal/feature/bars/domain/entity"
	"trade_review_backend/internal/feature/bars/usecase"
)

// ErrSource はモックと期待値の間で共有されるセンチネルエラーです。
var ErrSource = errors.New("source error")

// mockBarRepository はBarRepositoryインターフェースのモック実装です。
type mockBarRepository struct {
	FindBarsFunc            func(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error)
	ColumnsFunc             func(ctx context.Context) ([]string, error)
	FindIndicatorPointsFunc func(ctx context.Context, column string, f entity.BarFilter) ([]entity.IndicatorPoint, error)
	FindBarsCalls           int
	IndicatorCalls          []string // 呼び出された列名を順に記録
}

func (m *mockBarRepository) FindBars(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error) {
	m.FindBarsCalls++
	if m.FindBarsFunc != nil {
		return m.FindBarsFunc(ctx, f)
	}
	return nil, errors.New("FindBarsFunc is not implemented")
}

func (m *mockBarRepository) Columns(ctx context.Context) ([]string, error) {
	if m.ColumnsFunc != nil {
		return m.ColumnsFunc(ctx)
	}
	return nil, errors.New("ColumnsFunc is not implemented")
}

func (m *mockBarRepository) FindIndicatorPoints(ctx context.Context, column string, f entity.BarFilter) ([]entity.IndicatorPoint, error) {
	m.IndicatorCalls = append(m.IndicatorCalls, column)
	if m.FindIndicatorPointsFunc != nil {
		return m.FindIndicatorPointsFunc(ctx, column, f)
	}
	return nil, errors.New("FindIndicatorPointsFunc is not implemented")
}

// TestBarsUsecase_LoadBars はフィルタの組み立てとリポジトリ呼び出しをテストします。
func TestBarsUsecase_LoadBars(t *testing.T) {
	ctx := context.Background()
	expectedCandles := []entity.Candle{
		{Time: 1729771800, Open: 71.22, High: 71.32, Low: 71.21, Close: 71.25},
	}

	tests := []struct {
		name            string
		contract        string
		start           string
		end             string
		mockFindBars    func(t *testing.T) func(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error)
		expectedCandles []entity.Candle
		wantErr         bool
	}{
		{
			name:     "success: no filters passes an unbounded filter",
			contract: "",
			start:    "",
			end:      "",
			mockFindBars: func(t *testing.T) func(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error) {
				return func(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error) {
					assert.Empty(t, f.Contract)
					assert.Nil(t, f.StartMillis)
					assert.Nil(t, f.EndMillis)
					return expectedCandles, nil
				}
			},
			expectedCandles: expectedCandles,
		},
		{
			name:     "success: bounds are scaled to milliseconds",
			contract: "CLZ4_ohlcv1m",
			start:    "2024-10-24",
			end:      "2024-10-24",
			mockFindBars: func(t *testing.T) func(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error) {
				return func(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error) {
					assert.Equal(t, "CLZ4_ohlcv1m", f.Contract)
					require.NotNil(t, f.StartMillis)
					require.NotNil(t, f.EndMillis)
					assert.Equal(t, int64(1729728000000), *f.StartMillis)
					assert.Equal(t, int64(1729814399000), *f.EndMillis)
					return expectedCandles, nil
				}
			},
			expectedCandles: expectedCandles,
		},
		{
			name:     "error: repository error is propagated",
			contract: "CLZ4_ohlcv1m",
			start:    "",
			end:      "",
			mockFindBars: func(t *testing.T) func(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error) {
				return func(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error) {
					return nil, ErrSource
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBarRepository{FindBarsFunc: tt.mockFindBars(t)}
			uc := usecase.NewBarsUsecase(repo)

			candles, err := uc.LoadBars(ctx, tt.contract, tt.start, tt.end)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSource)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCandles, candles)
		})
	}
}

// TestBarsUsecase_LoadBars_InvalidDateShortCircuits は日付エラー時にデータソースへ
// 一切アクセスしないことを検証します。
func TestBarsUsecase_LoadBars_InvalidDateShortCircuits(t *testing.T) {
	repo := &mockBarRepository{}
	uc := usecase.NewBarsUsecase(repo)

	_, err := uc.LoadBars(context.Background(), "CLZ4_ohlcv1m", "10/24/2024", "")

	var invalidDate *domain.InvalidDateError
	require.True(t, errors.As(err, &invalidDate))
	assert.Equal(t, 0, repo.FindBarsCalls, "repository must not be reached on a date parse error")
}

// TestBarsUsecase_LoadSeries は系列の組み立て（カタログ順・欠損列スキップ・ペイン分類）をテストします。
func TestBarsUsecase_LoadSeries(t *testing.T) {
	ctx := context.Background()
	point := entity.IndicatorPoint{Time: 1729771800, Value: 54.2}

	tests := []struct {
		name          string
		columns       []string
		expectedIDs   []string
		expectedPanes []string
	}{
		{
			name:          "catalog order independent of source column order",
			columns:       []string{"atr_14", "close", "vwap", "timestamp", "ema_9", "contract"},
			expectedIDs:   []string{"vwap", "ema_9", "atr_14"},
			expectedPanes: []string{"price", "price", "atr"},
		},
		{
			name:          "absent catalog columns are skipped silently",
			columns:       []string{"timestamp", "contract", "open", "high", "low", "close", "rsi_14_wilder"},
			expectedIDs:   []string{"rsi_14_wilder"},
			expectedPanes: []string{"rsi"},
		},
		{
			name:          "no indicator columns yields an empty list",
			columns:       []string{"timestamp", "contract", "open", "high", "low", "close"},
			expectedIDs:   []string{},
			expectedPanes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBarRepository{
				ColumnsFunc: func(ctx context.Context) ([]string, error) {
					return tt.columns, nil
				},
				FindIndicatorPointsFunc: func(ctx context.Context, column string, f entity.BarFilter) ([]entity.IndicatorPoint, error) {
					return []entity.IndicatorPoint{point}, nil
				},
			}
			uc := usecase.NewBarsUsecase(repo)

			series, err := uc.LoadSeries(ctx, "", "", "")
			require.NoError(t, err)
			require.Len(t, series, len(tt.expectedIDs))

			for i, s := range series {
				assert.Equal(t, tt.expectedIDs[i], s.ID)
				assert.Equal(t, tt.expectedPanes[i], s.Pane)
				assert.Equal(t, "line", s.Kind)
				assert.Equal(t, []entity.IndicatorPoint{point}, s.Data)
			}
			if len(tt.expectedIDs) == 0 {
				assert.Empty(t, repo.IndicatorCalls)
			} else {
				assert.Equal(t, tt.expectedIDs, repo.IndicatorCalls, "repository should only be queried for present catalog columns, in catalog order")
			}
		})
	}
}

// TestBarsUsecase_LoadSeries_Naming は列名から表示ラベルが導出されることを検証します。
func TestBarsUsecase_LoadSeries_Naming(t *testing.T) {
	repo := &mockBarRepository{
		ColumnsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"rsi_14_ema", "vwap"}, nil
		},
		FindIndicatorPointsFunc: func(ctx context.Context, column string, f entity.BarFilter) ([]entity.IndicatorPoint, error) {
			return []entity.IndicatorPoint{}, nil
		},
	}
	uc := usecase.NewBarsUsecase(repo)

	series, err := uc.LoadSeries(context.Background(), "", "", "")
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, "VWAP", series[0].Name)
	assert.Equal(t, "RSI 14 EMA", series[1].Name)
}

// TestBarsUsecase_LoadSeries_InvalidDateShortCircuits は系列クエリでも日付エラーが先行することを検証します。
func TestBarsUsecase_LoadSeries_InvalidDateShortCircuits(t *testing.T) {
	repo := &mockBarRepository{}
	uc := usecase.NewBarsUsecase(repo)

	_, err := uc.LoadSeries(context.Background(), "", "", "2024-02-30")

	var invalidDate *domain.InvalidDateError
	require.True(t, errors.As(err, &invalidDate))
	assert.Empty(t, repo.IndicatorCalls)
}
