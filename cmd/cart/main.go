package main

import (
	"flag"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"kalaverse/internal/auth"
	"kalaverse/internal/cart"
	"kalaverse/internal/config"
	"kalaverse/internal/notify"
	"kalaverse/pkg/kit"
)

func main() {
	service := "cart"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfgPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath, config.Config{
		Addr:       ":8083",
		JWTSecret:  "dev-secret",
		CatalogURL: "http://localhost:8082",
		CartDir:    "./data/carts",
	})
	if err != nil {
		log.Fatal("load config failed", zap.Error(err))
	}

	// Redis when configured, otherwise the local file slots.
	var store cart.Storage
	if cfg.RedisAddr != "" {
		store = cart.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	} else {
		fs, err := cart.NewFileStore(cfg.CartDir)
		if err != nil {
			log.Fatal("open cart dir failed", zap.Error(err))
		}
		store = fs
	}

	s := &cart.Server{
		Carts:   cart.NewCarts(store, log),
		Catalog: cart.NewCatalogClient(cfg.CatalogURL),
		Notify:  &notify.ZapSink{Log: log},
		Log:     log,
	}

	h := cart.NewHandler(s, auth.NewTokenMaker(cfg.JWTSecret), cart.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
	})

	if err := kit.RunServer(cfg.Addr, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
