package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	barshandler "trade_review_backend/internal/feature/bars/transport/handler"
	contracthandler "trade_review_backend/internal/feature/contracts/transport/handler"
	"trade_review_backend/internal/platform/http/handler"
)

// NewRouter builds the HTTP router and wires all endpoint handlers.
// corsOrigin is the single allowed frontend origin; the API is GET-only.
func NewRouter(bars *barshandler.BarsHandler, contracts *contracthandler.ContractHandler, corsOrigin string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{corsOrigin},
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Content-Type"},
	}))

	// 導通確認用
	r.GET("/health", handler.Health)
	r.HEAD("/health", handler.Health)

	// チャートデータ（認証なし・読み取り専用）
	r.GET("/bars", bars.GetBars)
	r.GET("/series", bars.GetSeries)
	r.GET("/contracts", contracts.List)

	return r
}
