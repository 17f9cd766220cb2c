//	@title			Bottle Template API
//	@version		1.0
//	@description	Configuration, profile and inventory records backed by a key-value store, with item images and video uploads on object storage.
//
//	@host		localhost:8080
//	@BasePath	/api

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bottle-template/service/internal/config"
	"github.com/bottle-template/service/internal/kv"
	"github.com/bottle-template/service/internal/logger"
	"github.com/bottle-template/service/internal/scratch"
	"github.com/bottle-template/service/internal/server"
	"github.com/bottle-template/service/internal/storage"

	_ "github.com/bottle-template/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	logCloser, err := logger.Setup(logger.Options{
		Level:      cfg.LogLevel,
		JSON:       cfg.IsProduction(),
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		log.Fatalf("logger setup failed: %v", err)
	}
	defer logCloser.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := openStore(ctx, cfg)
	if err != nil {
		cancel()
		log.Fatalf("key-value store init failed: %v", err)
	}
	defer store.Close()

	objects, err := openStorage(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	dir, err := scratch.New(cfg.ScratchDir)
	if err != nil {
		log.Fatalf("scratch dir init failed: %v", err)
	}
	if n, err := dir.Sweep(); err != nil {
		log.Warnf("scratch sweep failed: %v", err)
	} else if n > 0 {
		log.Infof("removed %d stale scratch files from %s", n, dir.Path())
	}

	handler := server.New(server.Deps{
		Store:          store,
		Storage:        objects,
		Scratch:        dir,
		VideoURLTTL:    cfg.VideoURLTTL,
		JWTSecret:      cfg.JWTSecret,
		SwaggerEnabled: cfg.SwaggerEnabled,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("server listening on :%s (env=%s, kv=%s, storage=%s)", cfg.Port, cfg.AppEnv, cfg.KVDriver, cfg.StorageDriver)
		if cfg.SwaggerEnabled {
			log.Infof("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Info("shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.KVDriver {
	case "redis":
		return kv.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "badger":
		return kv.NewBadgerStore(cfg.BadgerDir)
	default:
		return nil, fmt.Errorf("unknown KV_DRIVER %q", cfg.KVDriver)
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case "minio":
		return storage.NewMinioStorage(ctx, storage.MinioOptions{
			Endpoint:     cfg.StorageEndpoint,
			AccessKey:    cfg.StorageAccessKey,
			SecretKey:    cfg.StorageSecretKey,
			Region:       cfg.StorageRegion,
			Bucket:       cfg.StorageBucket,
			PublicBase:   cfg.StoragePublicBase,
			UseSSL:       cfg.StorageUseSSL,
			PublicPolicy: cfg.StoragePublicPolicy,
		})
	case "s3":
		return storage.NewS3Storage(ctx, storage.S3Options{
			Endpoint:   cfg.StorageEndpoint,
			AccessKey:  cfg.StorageAccessKey,
			SecretKey:  cfg.StorageSecretKey,
			Region:     cfg.StorageRegion,
			Bucket:     cfg.StorageBucket,
			PublicBase: cfg.StoragePublicBase,
			UseSSL:     cfg.StorageUseSSL,
		})
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
