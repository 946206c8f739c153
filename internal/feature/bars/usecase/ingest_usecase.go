package usecase

import (
	"context"
	"log/slog"

	"trade_review_backend/internal/feature/bars/domain/entity"
)

// ingestBatchSize は1回のupsertで書き込む行数です。
const ingestBatchSize = 500

// BarSource は事前計算済みバーの取得元（CSVエクスポートなど）を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type BarSource interface {
	ReadBars(ctx context.Context, path string) ([]entity.BarRecord, error)
}

// BarWriter はバーデータの書き込みレイヤーを抽象化します。
// HTTPサービス自体は読み取り専用で、書き込みは ingest コマンドだけが行います。
type BarWriter interface {
	UpsertBatch(ctx context.Context, records []entity.BarRecord) error
}

// IngestUsecase は上流のエクスポートファイルを読み込み、データセットに永続化します。
type IngestUsecase struct {
	source BarSource
	bars   BarWriter
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(source BarSource, bars BarWriter) *IngestUsecase {
	return &IngestUsecase{source: source, bars: bars}
}

// IngestFile は指定されたエクスポートファイルの全行をバッチでupsertします。
// 1つのバッチでエラーが発生しても処理を止めずにログへ出力し、次のバッチを続けます。
func (iu *IngestUsecase) IngestFile(ctx context.Context, path string) error {
	records, err := iu.source.ReadBars(ctx, path)
	if err != nil {
		return err
	}

	slog.Info("ingesting bars", "path", path, "rows", len(records))

	for offset := 0; offset < len(records); offset += ingestBatchSize {
		limit := offset + ingestBatchSize
		if limit > len(records) {
			limit = len(records)
		}
		if err := iu.bars.UpsertBatch(ctx, records[offset:limit]); err != nil {
			slog.Error("failed to upsert batch", "offset", offset, "error", err)
			continue
		}
	}

	return nil
}
