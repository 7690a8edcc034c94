package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"project_sentinel/internal/config"
	"project_sentinel/internal/infrastructure"
	"project_sentinel/internal/interfaces/http"
	"project_sentinel/internal/repository"
	"project_sentinel/internal/usecases"
)

func main() {
	// Load .env file if present; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("configuration error: " + err.Error())
	}

	log, err := infrastructure.NewLogger(cfg.LogMode)
	if err != nil {
		panic("logger init failed: " + err.Error())
	}
	defer log.Sync()

	// Dataset is loaded eagerly so a bad file fails the process at
	// startup instead of on the first request.
	store := repository.NewStore(cfg.DatasetPath)
	ds, err := store.Load()
	if err != nil {
		log.Fatal("dataset load failed", "path", cfg.DatasetPath, "error", err.Error())
	}
	log.Info("dataset loaded",
		"path", cfg.DatasetPath,
		"rows", len(ds.Records),
		"contract_type", ds.Caps.HasContractType,
		"onboarding", ds.Caps.HasOnboarding,
		"engagement", ds.Caps.HasEngagement,
	)

	aiClient := infrastructure.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIKey, cfg.Model, cfg.MaxTokens, log)
	sessions := infrastructure.NewSessionManager()

	dashboard := usecases.NewDashboardUsecase(store, cfg)
	chat := usecases.NewChatService(aiClient, store, sessions, cfg, log)

	middleware := http.NewMiddleware()

	if cfg.LogMode == "prod" || cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	http.SetupRoutes(r, dashboard, chat, middleware, cfg.ChatRate, cfg.ChatBurst, log)

	log.Info("server starting", "port", cfg.Port)
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatal("server failed", "error", err.Error())
	}
}
