package main

import (
	"context"
	"flag"
	"log"
	"time"

	barsadapters "trade_review_backend/internal/feature/bars/adapters"
	barsusecase "trade_review_backend/internal/feature/bars/usecase"
	"trade_review_backend/internal/platform/config"
	platformdb "trade_review_backend/internal/platform/db"
)

func main() {
	csvPath := flag.String("csv", "", "path to the upstream CSV export of bars and indicators")
	flag.Parse()
	if *csvPath == "" {
		log.Fatal("usage: ingest -csv <export.csv>")
	}

	cfg := config.Load()

	db, err := platformdb.OpenBars(cfg.DataPath)
	if err != nil {
		log.Fatal(err)
	}
	// ingest だけがテーブルを作成・更新する
	if err := platformdb.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	barRepo := barsadapters.NewBarRepository(db, "")
	source := barsadapters.NewCSVSource()
	uc := barsusecase.NewIngestUsecase(source, barRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := uc.IngestFile(ctx, *csvPath); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}
