package main

import (
	"log"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/bootstrap"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/config"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
