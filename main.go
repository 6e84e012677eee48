package main

import (
	"log"

	"promptlab-backend/config"
	"promptlab-backend/internal/api"
	"promptlab-backend/internal/store"
	"promptlab-backend/pkg/logger"
)

// @title PromptLab API
// @version 1.0
// @description AI prompt engineering platform: prompts and collections.

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router := api.NewRouter(cfg, store.New())

	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
