package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/martin-hlavaty-kyn/skills-getting-started-with-github-copilot/internal/api"
	"github.com/martin-hlavaty-kyn/skills-getting-started-with-github-copilot/internal/config"
	"github.com/martin-hlavaty-kyn/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/martin-hlavaty-kyn/skills-getting-started-with-github-copilot/internal/roster"
	httptransport "github.com/martin-hlavaty-kyn/skills-getting-started-with-github-copilot/internal/transport/http"
)

func main() {
	cfg := config.Load()

	var repo *roster.Repository
	if cfg.SeedFile != "" {
		seed, err := roster.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("failed to load seed file: %v", err)
		}
		repo = roster.NewRepositoryWithSeed(seed)
	} else {
		repo = roster.NewRepository()
	}

	service := domain.NewService(repo)

	handler := api.NewHandler(service, cfg.StaticDir)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	middleware := api.NewMiddleware(cfg.CORSOrigin)

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, middleware.Wrap(mux))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("activities service listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
