// Package bootstrap builds the application components from a RestConfig.
// The REST API and the CLI share it.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/card-wallet/internal/app"
	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/domain/images"
	"github.com/MGTheTrain/card-wallet/internal/infrastructure/connector"
	"github.com/MGTheTrain/card-wallet/internal/infrastructure/persistence"
	"github.com/MGTheTrain/card-wallet/internal/pkg/config"
	"github.com/MGTheTrain/card-wallet/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Dependencies holds all initialized application components
type Dependencies struct {
	DB             *gorm.DB
	Redis          *redis.Client
	CardRepository cards.CardRepository
	ImageConnector images.ImageConnector

	CardUpload   cards.CardUploadService
	CardMetadata cards.CardMetadataService
	CardImage    cards.CardImageService
	Sweeper      *app.OrphanSweeper
}

// Initialize sets up all application components.
// The image store is created here, before any request can reach it.
func Initialize(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	db, err := persistence.NewDBConnection(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	deps.DB = db

	if err := persistence.Migrate(db); err != nil {
		_ = deps.Close()
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	if err := deps.initializeRepository(ctx, cfg, log); err != nil {
		_ = deps.Close()
		return nil, err
	}

	imageConnector, err := newImageConnector(ctx, &cfg.ImageStore, log)
	if err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}
	deps.ImageConnector = imageConnector

	if err := deps.initializeServices(cfg, log); err != nil {
		_ = deps.Close()
		return nil, err
	}

	log.Info("Application services initialized successfully")
	return deps, nil
}

// initializeRepository creates the card repository, wrapped in the redis list cache when enabled
func (d *Dependencies) initializeRepository(ctx context.Context, cfg *config.RestConfig, log logger.Logger) error {
	cardRepo, err := persistence.NewGormCardRepository(d.DB, log)
	if err != nil {
		return fmt.Errorf("failed to create card repository: %w", err)
	}

	if cfg.Cache.Enabled {
		client, err := persistence.NewRedisClient(ctx, cfg.Cache)
		if err != nil {
			return err
		}
		d.Redis = client
		cardRepo = persistence.NewCachedCardRepository(cardRepo, client, cfg.Cache.TTL, log)
		log.Info("Card list cache enabled at ", cfg.Cache.Address)
	}

	d.CardRepository = cardRepo
	return nil
}

func (d *Dependencies) initializeServices(cfg *config.RestConfig, log logger.Logger) error {
	var err error

	d.CardUpload, err = app.NewCardUploadService(d.CardRepository, d.ImageConnector, log)
	if err != nil {
		return fmt.Errorf("failed to create card upload service: %w", err)
	}

	d.CardMetadata, err = app.NewCardMetadataService(d.CardRepository, d.ImageConnector, cfg.ImageStore.RemoveOnDelete, log)
	if err != nil {
		return fmt.Errorf("failed to create card metadata service: %w", err)
	}

	d.CardImage, err = app.NewCardImageService(d.CardRepository, d.ImageConnector, cfg.ImageStore.ServeUnreferenced, log)
	if err != nil {
		return fmt.Errorf("failed to create card image service: %w", err)
	}

	d.Sweeper = app.NewOrphanSweeper(d.CardRepository, d.ImageConnector, cfg.Sweeper.GracePeriod, log)
	return nil
}

// newImageConnector selects the image store implementation by provider
func newImageConnector(ctx context.Context, settings *config.ImageStoreSettings, log logger.Logger) (images.ImageConnector, error) {
	switch settings.Provider {
	case config.LocalImageProvider:
		return connector.NewLocalImageConnector(settings, log)
	case config.MinioImageProvider:
		return connector.NewMinioImageConnector(ctx, settings, log)
	default:
		return nil, fmt.Errorf("unsupported image store provider: %s", settings.Provider)
	}
}

// Close releases the database and redis connections
func (d *Dependencies) Close() error {
	var errs []error
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}
	if d.DB != nil {
		if err := persistence.CloseDB(d.DB); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
