package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"

	"socialfit/internal/config"
	"socialfit/internal/database"
	"socialfit/internal/handler"
	"socialfit/internal/ledger"
	redisclient "socialfit/internal/redis"
	"socialfit/internal/service"
	"socialfit/internal/store"
)

func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	st, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	relationships := ledger.NewRelationshipLedger(st)
	interactions := ledger.NewInteractionLedger(st)
	users := ledger.NewUserDirectory(st)

	authService := service.NewAuthService(users, cfg)
	socialService := service.NewSocialService(relationships, interactions)

	var mediaHandler *handler.MediaHandler
	mediaService, err := service.NewMediaService(ctx, cfg, users)
	if err != nil {
		log.Printf("Avatar uploads disabled: %v", err)
	} else {
		mediaHandler = handler.NewMediaHandler(mediaService)
	}

	router := NewRouter(RouterConfig{
		AuthHandler:        handler.NewAuthHandler(authService),
		SocialHandler:      handler.NewSocialHandler(socialService),
		InteractionHandler: handler.NewInteractionHandler(socialService, authService),
		MediaHandler:       mediaHandler,
		JWTSecret:          cfg.JWTSecret,
	})

	log.Printf("Starting server on :%s (store driver: %s)", cfg.ServerPort, cfg.StoreDriver)
	return stdhttp.ListenAndServe(":"+cfg.ServerPort, router)
}

// openStore builds the persistent store for the configured driver. The
// returned cleanup closes the backing connection, if any.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		pg := store.NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return pg, func() { db.Close() }, nil

	case config.DriverRedis:
		client, err := redisclient.NewClient(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := client.Ping(ctx); err != nil {
			client.Close()
			return nil, nil, err
		}
		return store.NewRedisStore(client.Client), func() { client.Close() }, nil

	case config.DriverMemory:
		log.Println("Using in-memory store; data will not survive restarts")
		return store.NewMemoryStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
