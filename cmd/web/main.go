package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/config"
	apphttp "github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/http"
	"github.com/TeluguDelicacies/WebsiteWithAdmin-sub000/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	files, err := storage.FromConfig(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	logger.Info("storage ready", "driver", files.Driver)

	r := apphttp.NewRouter(logger, db, cfg, files.Storage)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
