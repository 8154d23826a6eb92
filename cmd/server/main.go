package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"auctionary/internal/api"
	"auctionary/internal/config"
	"auctionary/internal/logging"
	"auctionary/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logging.Info("no .env file found, using environment variables", nil)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logging.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}

	logging.SetLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	// Configure GORM logger to ignore "record not found" errors; lookups of
	// absent items and tokens are expected traffic, not failures
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		logging.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		logging.Fatal("failed to run migrations", map[string]any{"error": err.Error()})
	}

	server := api.NewServer(db, cfg.StaticDir)

	logging.Info("starting http server", map[string]any{"addr": cfg.ListenAddr})
	if err := http.ListenAndServe(cfg.ListenAddr, server.Router()); err != nil {
		logging.Fatal("http server failed", map[string]any{"error": err.Error()})
	}
}
