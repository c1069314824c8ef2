package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"menu-storefront/config"
	httpapi "menu-storefront/storefront-svc/internal/api/http"
	"menu-storefront/storefront-svc/internal/service"
	"menu-storefront/storefront-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cms := storage.NewCMSClient(cfg.CMS.BaseURL, cfg.CMS.APIToken, &http.Client{Timeout: cfg.CMS.Timeout}, logger)

	var (
		cache     service.ResponseCache
		ranking   service.PopularityRanking
		publisher service.ViewPublisher
	)
	if rdb := config.MustInitRedis(cfg.Cache, logger); rdb != nil {
		defer rdb.Close()
		redisCache := storage.NewRedisCache(rdb, cfg.Cache.TTL)
		cache = redisCache
		ranking = redisCache
	} else {
		logger.Info("Redis not configured, CMS responses are not cached")
	}
	if writer := config.NewKafkaWriter(cfg.Kafka); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		logger.Info("Kafka not configured, item views are not recorded")
	}

	views := service.NewViewTracker(publisher, ranking, logger)
	catalog := service.NewCatalogService(cms, cache, views, service.CatalogOptions{
		MediaBaseURL:       cfg.CMS.MediaURL,
		FeaturedCategories: cfg.Storefront.FeaturedCategories,
		PopularLimit:       cfg.Storefront.PopularLimit,
	}, logger)
	share := service.NewShareService(cfg.PublicURL)

	handler := httpapi.NewHandler(catalog, share, logger)
	router := httpapi.NewRouter(handler)

	logger.Info("Using CMS", zap.String("base_url", cfg.CMS.BaseURL))
	if err := httpapi.StartServer(ctx, ":"+cfg.Port, router, logger); err != nil {
		logger.Fatal("Storefront stopped", zap.Error(err))
	}
}
