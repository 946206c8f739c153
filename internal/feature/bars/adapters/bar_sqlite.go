// Package adapters はbarsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trade_review_backend/internal/feature/bars/domain"
	"trade_review_backend/internal/feature/bars/domain/entity"
	"trade_review_backend/internal/feature/bars/usecase"
)

type barSQLite struct {
	db   *gorm.DB
	path string
}

var _ usecase.BarRepository = (*barSQLite)(nil)
var _ usecase.BarWriter = (*barSQLite)(nil)

// NewBarRepository は指定されたDB接続でbarSQLiteリポジトリの新しいインスタンスを生成します。
// path は設定されたデータソースの場所で、リクエストごとに存在チェックされます。
// 空の path はチェックを無効にします（:memory: を使うテスト用）。
func NewBarRepository(db *gorm.DB, path string) *barSQLite {
	return &barSQLite{db: db, path: path}
}

// BarModel is one row of the bars table. OHLC and indicator columns are
// nullable so that "missing" survives the round trip instead of collapsing
// to zero. Timestamps are epoch milliseconds.
type BarModel struct {
	ID        uint   `gorm:"primaryKey"`
	Contract  string `gorm:"size:64;not null;uniqueIndex:bar_contract_ts,priority:1"`
	Timestamp int64  `gorm:"not null;uniqueIndex:bar_contract_ts,priority:2"`

	Open  *float64
	High  *float64
	Low   *float64
	Close *float64

	Vwap        *float64 `gorm:"column:vwap"`
	Vwapn       *float64 `gorm:"column:vwapn"`
	Vwapd       *float64 `gorm:"column:vwapd"`
	Ema9        *float64 `gorm:"column:ema_9"`
	Ema14       *float64 `gorm:"column:ema_14"`
	Ema21       *float64 `gorm:"column:ema_21"`
	Rsi14Ema    *float64 `gorm:"column:rsi_14_ema"`
	Rsi14Wilder *float64 `gorm:"column:rsi_14_wilder"`
	Atr14       *float64 `gorm:"column:atr_14"`
}

func (BarModel) TableName() string {
	return "bars"
}

// indicatorField maps an export column name onto the model field.
// Unknown names are dropped; the table schema is fixed by the model.
func (m *BarModel) setIndicator(name string, value *float64) {
	switch name {
	case "vwap":
		m.Vwap = value
	case "vwapn":
		m.Vwapn = value
	case "vwapd":
		m.Vwapd = value
	case "ema_9":
		m.Ema9 = value
	case "ema_14":
		m.Ema14 = value
	case "ema_21":
		m.Ema21 = value
	case "rsi_14_ema":
		m.Rsi14Ema = value
	case "rsi_14_wilder":
		m.Rsi14Wilder = value
	case "atr_14":
		m.Atr14 = value
	}
}

func toModel(rec entity.BarRecord) BarModel {
	m := BarModel{
		Contract:  rec.Contract,
		Timestamp: rec.Timestamp,
		Open:      rec.Open,
		High:      rec.High,
		Low:       rec.Low,
		Close:     rec.Close,
	}
	for name, value := range rec.Indicators {
		m.setIndicator(name, value)
	}
	return m
}

// checkSource fails with SourceUnavailableError when the configured dataset
// file cannot be located. sqlite would otherwise create an empty file on
// first access and hide the misconfiguration.
func (r *barSQLite) checkSource() error {
	if r.path == "" {
		return nil
	}
	if _, err := os.Stat(r.path); err != nil {
		return &domain.SourceUnavailableError{Path: r.path}
	}
	return nil
}

// Columns はbarsテーブルに実在する列名を返します。
func (r *barSQLite) Columns(ctx context.Context) ([]string, error) {
	if err := r.checkSource(); err != nil {
		return nil, err
	}
	types, err := r.db.WithContext(ctx).Migrator().ColumnTypes(&BarModel{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(types))
	for _, ct := range types {
		names = append(names, ct.Name())
	}
	return names, nil
}

// requireColumns はバーのクエリに必要な列が欠けていないか検証します。
func (r *barSQLite) requireColumns(ctx context.Context, names ...string) error {
	cols, err := r.Columns(ctx)
	if err != nil {
		return err
	}
	present := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		present[c] = struct{}{}
	}
	for _, name := range names {
		if _, ok := present[name]; !ok {
			return &domain.ColumnReadError{Column: name}
		}
	}
	return nil
}

// filtered builds the shared predicate set: contract equality plus the
// inclusive millisecond bounds.
func (r *barSQLite) filtered(ctx context.Context, f entity.BarFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&BarModel{})
	if f.Contract != "" {
		q = q.Where("contract = ?", f.Contract)
	}
	if f.StartMillis != nil {
		q = q.Where("timestamp >= ?", *f.StartMillis)
	}
	if f.EndMillis != nil {
		q = q.Where("timestamp <= ?", *f.EndMillis)
	}
	return q
}

// FindBars はフィルタに一致するローソク足をタイムスタンプ昇順で返します。
// OHLCのいずれかが欠けている行はゼロ埋めせず、行ごとスキップします。
func (r *barSQLite) FindBars(ctx context.Context, f entity.BarFilter) ([]entity.Candle, error) {
	if err := r.requireColumns(ctx, "timestamp", "contract", "open", "high", "low", "close"); err != nil {
		return nil, err
	}

	rows, err := r.filtered(ctx, f).
		Select("timestamp, open, high, low, close").
		Order("timestamp ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Candle, 0)
	for rows.Next() {
		var ts sql.NullInt64
		var open, high, low, cls sql.NullFloat64
		if err := rows.Scan(&ts, &open, &high, &low, &cls); err != nil {
			return nil, err
		}
		if !ts.Valid || !open.Valid || !high.Valid || !low.Valid || !cls.Valid {
			continue
		}
		out = append(out, entity.Candle{
			Time:  ts.Int64 / 1000,
			Open:  open.Float64,
			High:  high.Float64,
			Low:   low.Float64,
			Close: cls.Float64,
		})
	}
	return out, rows.Err()
}

// FindIndicatorPoints は指定列の有効なサンプルをタイムスタンプ昇順で返します。
// NULLまたはNaNの値を持つ行はスキップします。
func (r *barSQLite) FindIndicatorPoints(ctx context.Context, column string, f entity.BarFilter) ([]entity.IndicatorPoint, error) {
	if err := r.requireColumns(ctx, "timestamp", column); err != nil {
		return nil, err
	}

	rows, err := r.filtered(ctx, f).
		Select(fmt.Sprintf("timestamp, %q", column)).
		Order("timestamp ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.IndicatorPoint, 0)
	for rows.Next() {
		var ts sql.NullInt64
		var value sql.NullFloat64
		if err := rows.Scan(&ts, &value); err != nil {
			return nil, err
		}
		if !ts.Valid || !value.Valid || math.IsNaN(value.Float64) {
			continue
		}
		out = append(out, entity.IndicatorPoint{
			Time:  ts.Int64 / 1000,
			Value: value.Float64,
		})
	}
	return out, rows.Err()
}

// UpsertBatch は(contract, timestamp)をキーに行を一括で挿入または更新します。
func (r *barSQLite) UpsertBatch(ctx context.Context, records []entity.BarRecord) error {
	if len(records) == 0 {
		return nil
	}
	ms := make([]BarModel, 0, len(records))
	for _, rec := range records {
		ms = append(ms, toModel(rec))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "contract"}, {Name: "timestamp"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"open", "high", "low", "close",
			"vwap", "vwapn", "vwapd",
			"ema_9", "ema_14", "ema_21",
			"rsi_14_ema", "rsi_14_wilder", "atr_14",
		}),
	}).Create(&ms).Error
}
