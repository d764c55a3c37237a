package main

import (
	"flag"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"kalaverse/internal/config"
	"kalaverse/internal/gateway"
	"kalaverse/pkg/kit"
)

func main() {
	service := "gateway"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfgPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath, config.Config{
		Addr:       ":8080",
		AuthURL:    "http://auth:8081",
		CatalogURL: "http://catalog:8082",
		CartURL:    "http://cart:8083",
	})
	if err != nil {
		log.Fatal("load config failed", zap.Error(err))
	}

	if len(cfg.JWTSecret) < 32 {
		log.Fatal("jwt_secret is required and must be at least 32 chars")
	}

	h, err := gateway.NewHandler(
		gateway.Deps{
			JWTSecret:  cfg.JWTSecret,
			AuthURL:    cfg.AuthURL,
			CatalogURL: cfg.CatalogURL,
			CartURL:    cfg.CartURL,
		},
		gateway.HTTPDeps{
			Log:            log,
			Service:        service,
			Registry:       prometheus.NewRegistry(),
			MetricsEnabled: cfg.Metrics.Enabled,
			MetricsToken:   cfg.Metrics.Token,
		},
	)
	if err != nil {
		log.Fatal("init gateway handler failed", zap.Error(err))
	}

	if err := kit.RunServer(cfg.Addr, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
