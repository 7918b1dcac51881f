// Command export loads the persisted snapshot and writes the CSV export
// files to EXPORT_DIR. Empty collections are skipped: no file is produced
// for them.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/optivision/optivision/internal/config"
	"github.com/optivision/optivision/internal/export"
	"github.com/optivision/optivision/internal/postgres"
	"github.com/optivision/optivision/internal/redisx"
	"github.com/optivision/optivision/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dir := flag.String("dir", cfg.ExportDir, "directory to write CSV files into")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var persister store.Persister
	switch cfg.StorageDriver {
	case "redis":
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		persister = &store.RedisPersister{RDB: rdb}
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		defer db.Close()
		persister = &store.PostgresPersister{DB: db}
	default:
		persister = &store.FilePersister{Path: cfg.SnapshotPath}
	}

	snap, ok, err := persister.Load(ctx)
	if err != nil {
		log.Fatalf("load snapshot: %v", err)
	}
	if !ok {
		logger.Warn("no snapshot found, nothing to export")
		return
	}

	type exportFile struct{ name, csv string }
	now := time.Now()
	var files []exportFile

	if csv, ok := export.CustomersTable(snap.Customers).CSV(); ok {
		files = append(files, exportFile{export.Filename("Customers", now), csv})
	}
	if csv, ok := export.OrdersTable(snap.Orders).CSV(); ok {
		files = append(files, exportFile{export.Filename("Orders", now), csv})
	}
	if csv, ok := export.InventoryTable(snap.Inventory).CSV(); ok {
		files = append(files, exportFile{export.Filename("Inventory", now), csv})
	}
	if csv, ok := export.DashboardCSV(snap.Customers, snap.Orders); ok {
		files = append(files, exportFile{export.Filename("Dashboard-Export", now), csv})
	}

	for _, f := range files {
		path := filepath.Join(*dir, f.name)
		if err := os.WriteFile(path, []byte(f.csv), 0o644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		logger.Info("wrote export", zap.String("file", path))
	}
	if len(files) == 0 {
		logger.Warn("all collections empty, no files written")
	}
}
