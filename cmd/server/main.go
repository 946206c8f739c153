package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"trade_review_backend/internal/app/router"
	barsadapters "trade_review_backend/internal/feature/bars/adapters"
	barshandler "trade_review_backend/internal/feature/bars/transport/handler"
	barsusecase "trade_review_backend/internal/feature/bars/usecase"
	contractadapters "trade_review_backend/internal/feature/contracts/adapters"
	contracthandler "trade_review_backend/internal/feature/contracts/transport/handler"
	contractusecase "trade_review_backend/internal/feature/contracts/usecase"
	"trade_review_backend/internal/platform/cache"
	"trade_review_backend/internal/platform/config"
	platformdb "trade_review_backend/internal/platform/db"
	platformredis "trade_review_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	// db（事前計算済みバーのSQLiteファイル）
	db, err := platformdb.OpenBars(cfg.DataPath)
	if err != nil {
		log.Fatal(err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	barRepo := barsadapters.NewBarRepository(db, cfg.DataPath)
	contractRepo := contractadapters.NewContractRepository(db)

	// Redisキャッシュでラップ（データセットはingest間で不変なのでTTL失効のみ）
	cachedBarRepo := cache.NewCachingBarRepository(rdb, cfg.CacheTTL, barRepo, "bars")

	// Usecase
	barsUC := barsusecase.NewBarsUsecase(cachedBarRepo)
	contractUC := contractusecase.NewContractUsecase(contractRepo)

	// Handler
	barsH := barshandler.NewBarsHandler(barsUC)
	contractH := contracthandler.NewContractHandler(contractUC)

	// ルータ生成（CORSはチャートフロントエンドの単一オリジンのみ許可）
	r := router.NewRouter(barsH, contractH, cfg.CORSOrigin)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
