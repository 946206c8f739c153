// Package adapters はcontractsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	barsadapters "trade_review_backend/internal/feature/bars/adapters"
	"trade_review_backend/internal/feature/contracts/usecase"
)

// contractSQLite はContractRepositoryインターフェースのSQLite実装です。
// 契約の許可リストは持たず、barsテーブルに実在する値だけを返します。
type contractSQLite struct {
	db *gorm.DB
}

var _ usecase.ContractRepository = (*contractSQLite)(nil)

// NewContractRepository は指定されたDB接続でcontractSQLiteリポジトリの新しいインスタンスを生成します。
func NewContractRepository(db *gorm.DB) *contractSQLite {
	return &contractSQLite{db: db}
}

// ListContracts はデータセットに含まれる契約識別子を昇順で返します。
func (r *contractSQLite) ListContracts(ctx context.Context) ([]string, error) {
	var contracts []string
	if err := r.db.WithContext(ctx).
		Model(&barsadapters.BarModel{}).
		Distinct().
		Order("contract ASC").
		Pluck("contract", &contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}
