package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"fleetportal/backend/internal/api/handler"
	"fleetportal/backend/internal/config"
	"fleetportal/backend/internal/directory"
	"fleetportal/backend/internal/logger"
	"fleetportal/backend/internal/moderation"
	"fleetportal/backend/internal/records"
	"fleetportal/backend/internal/storage"
	"fleetportal/backend/internal/uploads"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file loaded")
	}
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Redis is optional; without it the approved-faults listing just hits
	// sqlite every time.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			zlog.Fatal("Failed to connect Redis", zap.Error(err))
		}
	}

	parts, err := storage.Open(cfg.DataDir, rdb)
	if err != nil {
		zlog.Fatal("Failed to open storage partitions", zap.Error(err))
	}
	defer parts.Close()

	files, err := uploads.New(cfg.UploadDir)
	if err != nil {
		zlog.Fatal("Failed to prepare upload dir", zap.Error(err))
	}

	dir := directory.NewService(parts.Users, zlog)
	if err := dir.SeedDefaults(); err != nil {
		zlog.Fatal("Failed to seed default accounts", zap.Error(err))
	}
	mod := moderation.NewService(parts.Faults, parts.Courses, files, zlog)
	rec := records.NewService(parts.Drivers, parts.Messages, parts.Locations, files)

	r := gin.Default()
	r.Use(cors.Default())
	r.Static("/uploads", cfg.UploadDir)

	h := handler.NewHandler(dir, mod, rec)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	zlog.Info("Portal backend listening", zap.String("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}
