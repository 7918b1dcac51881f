package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/optivision/optivision/internal/config"
	"github.com/optivision/optivision/internal/httpx"
	kafkax "github.com/optivision/optivision/internal/kafka"
	"github.com/optivision/optivision/internal/postgres"
	"github.com/optivision/optivision/internal/redisx"
	"github.com/optivision/optivision/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis (snapshot backend for the redis driver, dashboard cache otherwise)
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Snapshot backend
	var persister store.Persister
	switch cfg.StorageDriver {
	case "redis":
		persister = &store.RedisPersister{RDB: rdb}
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		defer db.Close()
		pg := &store.PostgresPersister{DB: db}
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("db schema: %v", err)
		}
		persister = pg
	default:
		persister = &store.FilePersister{Path: cfg.SnapshotPath}
	}

	st := store.New(persister, logger)
	if err := st.Init(ctx); err != nil {
		log.Fatalf("store init: %v", err)
	}

	// Kafka producer (optional: no brokers, no events)
	var prod *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, 1024, logger)
		prod.Start(ctx)
	}

	router := httpx.NewRouter()
	sh := &httpx.ShopHandler{
		Store:    st,
		Producer: prod,
		Redis:    rdb,
		Service:  cfg.ServiceName,
		Log:      logger,
	}
	sh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		logger.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if err := st.Close(ctx2); err != nil {
		logger.Error("final snapshot flush failed", zap.Error(err))
	}
	if prod != nil {
		prod.Close() // close inbox -> flush & close writer
		prod.WaitClosed()
	}
}
