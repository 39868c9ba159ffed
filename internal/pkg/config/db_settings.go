package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database types supported by the persistence layer
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
	MysqlDbType    = "mysql"
)

// DefaultSqliteDSN is the database file used when no DSN is configured
const DefaultSqliteDSN = "./cards.db"

// DatabaseSettings holds the connection settings for the card table
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres mysql"`
	DSN  string `mapstructure:"dsn"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	// sqlite falls back to DefaultSqliteDSN, server databases need a DSN
	if s.Type != SqliteDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for %s databases", s.Type)
	}

	return nil
}
