package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HyperionMedia/Plated-Free-sub001/config"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/server"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/service"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store/kv"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	backend, err := openBackend(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}
	defer func() { _ = backend.Close() }()

	st := store.New(backend)
	if err := st.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load store: %v", err)
	}

	authService := service.NewAuthService(st, cfg.JWTSecret)

	// The AI collaborators are optional; without keys the endpoints
	// report 503 and everything else works.
	llmService, err := service.NewLLMService()
	if err != nil {
		log.Printf("Recipe extraction disabled: %v", err)
	}
	imageService, err := newImageService(cfg)
	if err != nil {
		log.Printf("Image generation disabled: %v", err)
	}

	srv := server.New(cfg, st, authService, llmService, imageService)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

func openBackend(cfg *config.Config) (kv.Store, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return kv.NewMemory(), nil
	case config.StorageFile:
		return kv.NewFile(cfg.StoragePath)
	case config.StorageSQLite:
		return kv.NewSQLite(cfg.StoragePath)
	case config.StoragePostgres:
		return kv.NewPostgres(cfg.PostgresDSN)
	case config.StorageRedis:
		return kv.NewRedis(kv.RedisOptions{
			Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			URL:      cfg.RedisURL,
		})
	default:
		return kv.NewMemory(), nil
	}
}

func newImageService(cfg *config.Config) (*service.ImageService, error) {
	var s3cfg *config.S3Config
	if cfg.S3Enabled {
		var err error
		s3cfg, err = config.NewS3Config(context.Background())
		if err != nil {
			return nil, err
		}
	}
	return service.NewImageService(s3cfg)
}
