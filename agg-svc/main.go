package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menu-storefront/agg-svc/internal/service"
	"menu-storefront/agg-svc/internal/storage"
	"menu-storefront/config"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "agg-svc",
	})
}

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg.DB, logger)
	defer db.Close()

	store := storage.NewPostgresStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal("Failed to create item_views table", zap.Error(err))
	}

	var ranking service.RankingStore
	if rdb := config.MustInitRedis(cfg.Cache, logger); rdb != nil {
		defer rdb.Close()
		ranking = storage.NewRedisRanking(rdb)
	} else {
		logger.Info("Redis not configured, popularity ranking is not updated")
	}

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	consumer := service.NewConsumer(reader, store, ranking, logger)
	if err := consumer.Warmup(ctx); err != nil {
		logger.Warn("Failed to seed popularity ranking", zap.Error(err))
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", healthCheck).Methods("GET")
	srv := &http.Server{Addr: ":" + cfg.AggPort, Handler: r}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumer.Start(gctx)
	})
	g.Go(func() error {
		logger.Info("Aggregation service health endpoint starting", zap.String("port", cfg.AggPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Aggregation service stopped", zap.Error(err))
	}
}
