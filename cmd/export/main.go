package main

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/config"
	userapp "github.com/oksasatya/go-ddd-user-management/internal/application/user"
	pginfra "github.com/oksasatya/go-ddd-user-management/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-user-management/internal/interface/export"
	"github.com/oksasatya/go-ddd-user-management/pkg/helpers"
)

// export writes a JSON-lines snapshot of every user to GCS.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-export", cfg.Env)
	if cfg.GCSBucket == "" {
		log.Fatal("GCS_BUCKET not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 0, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	gcs, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
	if err != nil {
		log.Fatalf("failed to init GCS client: %v", err)
	}
	defer func() { _ = gcs.Close() }()

	exporter := export.NewExporter(userapp.NewListAll(pginfra.NewUserGateway(pool), logger), cfg.ExportPageSize)
	object := export.ObjectName(cfg.ExportPrefix, time.Now())

	pr, pw := io.Pipe()
	count := make(chan int, 1)
	go func() {
		n, err := exporter.WriteJSONLines(ctx, pw)
		count <- n
		_ = pw.CloseWithError(err)
	}()

	url, err := helpers.UploadObject(ctx, gcs, cfg.GCSBucket, object, "application/x-ndjson", pr)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	logger.WithFields(logrus.Fields{"object": object, "url": url, "users": <-count}).Info("export complete")
}
