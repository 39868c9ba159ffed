package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MGTheTrain/card-wallet/internal/bootstrap"
	"github.com/MGTheTrain/card-wallet/internal/pkg/config"
	"github.com/MGTheTrain/card-wallet/internal/pkg/logger"

	"github.com/joho/godotenv"
)

// DependencyLoader builds the application components a command operates on.
// The caller closes the returned dependencies.
type DependencyLoader func(ctx context.Context) (*bootstrap.Dependencies, error)

// NewConfigDependencyLoader returns a loader reading the configuration file *configPath
// at call time, so that the value of a parsed flag is honored.
func NewConfigDependencyLoader(configPath *string) DependencyLoader {
	return func(ctx context.Context) (*bootstrap.Dependencies, error) {
		_ = godotenv.Load()

		cfg, err := config.InitializeRestConfig(*configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize config: %w", err)
		}

		log, err := setupLogger(&cfg.Logger)
		if err != nil {
			return nil, err
		}

		return bootstrap.Initialize(ctx, cfg, log)
	}
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func writeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
