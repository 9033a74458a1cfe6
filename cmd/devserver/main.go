package main

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"

	"zanara/internal/config"
	"zanara/internal/devserver"
	"zanara/internal/logger"
)

func main() {
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	var store devserver.Store
	if cfg.Database.DSN != "" {
		var err error
		store, err = devserver.NewGormStore(cfg.Database.DSN)
		if err != nil {
			logger.Fatal("failed to open postgres store", "error", err.Error())
		}
	} else {
		store = devserver.NewMemStore()
		logger.Info("using in-memory store with seed data")
	}

	router := devserver.NewRouter(cfg, store)

	// Browser clients run on a different origin during development.
	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("dev server listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server stopped", "error", err.Error())
	}
}
