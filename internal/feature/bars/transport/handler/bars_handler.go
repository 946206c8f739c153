// Package handler はbarsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"trade_review_backend/internal/feature/bars/domain/entity"
	"trade_review_backend/internal/feature/bars/transport/http/dto"
)

// BarsUsecase はバーとインジケーター系列のクエリユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type BarsUsecase interface {
	LoadBars(ctx context.Context, contract, start, end string) ([]entity.Candle, error)
	LoadSeries(ctx context.Context, contract, start, end string) ([]entity.IndicatorSeries, error)
}

// BarsHandler はバーとインジケーター系列のHTTPリクエストを処理します。
type BarsHandler struct {
	uc BarsUsecase
}

// NewBarsHandler は指定されたusecaseでBarsHandlerの新しいインスタンスを生成します。
func NewBarsHandler(uc BarsUsecase) *BarsHandler {
	return &BarsHandler{uc: uc}
}

// GetBars は契約と日付範囲で絞り込んだローソク足をJSONで返します。
//
// エンドポイント例:
// GET /bars?contract=CLZ4_ohlcv1m&start=2024-10-24&end=2024-10-24
func (h *BarsHandler) GetBars(c *gin.Context) {
	candles, err := h.uc.LoadBars(
		c.Request.Context(),
		c.Query("contract"),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.BarsResponse{Candles: candles})
}

// GetSeries は同じフィルタでインジケーター系列をカタログ順のJSONで返します。
//
// エンドポイント例:
// GET /series?contract=CLZ4_ohlcv1m&start=2024-10-24&end=2024-10-24
func (h *BarsHandler) GetSeries(c *gin.Context) {
	series, err := h.uc.LoadSeries(
		c.Request.Context(),
		c.Query("contract"),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SeriesResponse{Series: series})
}
