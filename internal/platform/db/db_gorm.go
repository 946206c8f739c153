package db

import (
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	barsadapters "trade_review_backend/internal/feature/bars/adapters"
)

// OpenBars opens the sqlite bar database at path. A missing file is only
// logged here; the per-request existence check in the repository is what
// surfaces it to callers.
func OpenBars(path string) (*gorm.DB, error) {
	if _, err := os.Stat(path); err != nil {
		log.Println("[WARN] bar dataset not found at", path, "- queries will fail until it is ingested")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	abs, _ := filepath.Abs(path)
	log.Println("USING_SQLITE:", abs)

	return db, nil
}

// Migrate creates or updates the bars table. Only the ingest command runs
// migrations; the HTTP service never writes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&barsadapters.BarModel{})
}
