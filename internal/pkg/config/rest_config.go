package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding configuration keys,
// e.g. CARD_WALLET_DATABASE_DSN overrides database.dsn.
const EnvPrefix = "CARD_WALLET"

// RestConfig holds the configuration of the REST API and the CLI
type RestConfig struct {
	Port       string             `mapstructure:"port"`
	Database   DatabaseSettings   `mapstructure:"database"`
	Logger     LoggerSettings     `mapstructure:"logger"`
	ImageStore ImageStoreSettings `mapstructure:"image_store"`
	Cache      CacheSettings      `mapstructure:"cache"`
	Sweeper    SweeperSettings    `mapstructure:"sweeper"`
}

// Validate validates every settings section
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.ImageStore.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return c.Sweeper.Validate()
}

// InitializeRestConfig reads the YAML file at path, applies environment overrides and validates the result.
// An empty path or a missing file leaves the defaults in place.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", DefaultSqliteDSN)
	v.SetDefault("database.name", "")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("image_store.provider", LocalImageProvider)
	v.SetDefault("image_store.directory", DefaultImageDirectory)
	v.SetDefault("image_store.endpoint", "")
	v.SetDefault("image_store.access_key", "")
	v.SetDefault("image_store.secret_key", "")
	v.SetDefault("image_store.bucket", "card-images")
	v.SetDefault("image_store.use_ssl", false)
	v.SetDefault("image_store.remove_on_delete", false)
	v.SetDefault("image_store.serve_unreferenced", true)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.address", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 5*time.Minute)

	v.SetDefault("sweeper.enabled", false)
	v.SetDefault("sweeper.schedule", "@every 1h")
	v.SetDefault("sweeper.grace_period", time.Hour)
}
