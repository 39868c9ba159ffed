package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// SweeperSettings configures the periodic removal of images no card refers to
type SweeperSettings struct {
	Enabled     bool          `mapstructure:"enabled"`
	Schedule    string        `mapstructure:"schedule"`
	GracePeriod time.Duration `mapstructure:"grace_period"`
}

// Validate checks the schedule and grace period when the sweeper is enabled
func (s *SweeperSettings) Validate() error {
	if !s.Enabled {
		return nil
	}
	if _, err := cron.ParseStandard(s.Schedule); err != nil {
		return fmt.Errorf("invalid sweeper schedule %q: %w", s.Schedule, err)
	}
	if s.GracePeriod <= 0 {
		return fmt.Errorf("sweeper grace period must be positive")
	}
	return nil
}
