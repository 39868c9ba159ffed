package config

import (
	"fmt"
	"time"
)

// CacheSettings configures the optional redis cache in front of card listings
type CacheSettings struct {
	Enabled  bool          `mapstructure:"enabled"`
	Address  string        `mapstructure:"address"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Validate checks the cache settings when the cache is enabled
func (s *CacheSettings) Validate() error {
	if !s.Enabled {
		return nil
	}
	if s.Address == "" {
		return fmt.Errorf("address is required when the cache is enabled")
	}
	if s.DB < 0 {
		return fmt.Errorf("cache db must not be negative")
	}
	if s.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive")
	}
	return nil
}
