// Package usecase はバーとインジケーター系列のクエリパイプラインを実装します。
package usecase

import (
	"context"

	"trade_review_backend/internal/feature/bars/domain/entity"
)

// BarRepository はバーデータの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type BarRepository interface {
	// FindBars はフィルタに一致するローソク足をタイムスタンプ昇順で返します。
	FindBars(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error)
	// Columns はソースのテーブルに実在する列名を返します。
	Columns(ctx context.Context) ([]string, error)
	// FindIndicatorPoints は指定列の有効なサンプルをタイムスタンプ昇順で返します。
	FindIndicatorPoints(ctx context.Context, column string, f entity.BarFilter) ([]entity.IndicatorPoint, error)
}

// barsUsecase はバーとインジケーター系列のクエリユースケースを定義します。
type barsUsecase struct {
	bars BarRepository
}

// NewBarsUsecase はbarsUsecaseの新しいインスタンスを生成します。
func NewBarsUsecase(bars BarRepository) *barsUsecase {
	return &barsUsecase{bars: bars}
}

// LoadBars は契約と日付範囲（両端を含む）で絞り込んだローソク足を返します。
// 日付文字列の解析に失敗した場合、データソースへはアクセスしません。
func (bu *barsUsecase) LoadBars(ctx context.Context, contract, start, end string) ([]entity.Candle, error) {
	dr, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}

	return bu.bars.FindBars(ctx, dr.Millis(contract))
}

// LoadSeries は同じフィルタでインジケーター系列をカタログ順に返します。
// カタログにあってもソースに存在しない列はエラーにせずスキップします。
func (bu *barsUsecase) LoadSeries(ctx context.Context, contract, start, end string) ([]entity.IndicatorSeries, error) {
	dr, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	filter := dr.Millis(contract)

	cols, err := bu.bars.Columns(ctx)
	if err != nil {
		return nil, err
	}
	present := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		present[c] = struct{}{}
	}

	series := make([]entity.IndicatorSeries, 0, len(indicatorCatalog))
	for _, id := range indicatorCatalog {
		if _, ok := present[id]; !ok {
			continue
		}
		points, err := bu.bars.FindIndicatorPoints(ctx, id, filter)
		if err != nil {
			return nil, err
		}
		series = append(series, entity.IndicatorSeries{
			ID:   id,
			Name: indicatorName(id),
			Kind: SeriesKind,
			Pane: paneFor(id),
			Data: points,
		})
	}

	return series, nil
}
