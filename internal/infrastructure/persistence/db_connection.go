package persistence

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/card-wallet/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/card-wallet/internal/pkg/config"
	"github.com/MGTheTrain/card-wallet/internal/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration above which gorm reports a query
const slowQueryThreshold = 200 * time.Millisecond

// NewDBConnection creates a database connection based on settings.
// gorm warnings and errors are written to log.
func NewDBConnection(settings config.DatabaseSettings, log logger.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: newGormLogger(log)}

	switch settings.Type {
	case config.PostgresDbType:
		return connectPostgres(settings, gormConfig)
	case config.MysqlDbType:
		return connectMySQL(settings, gormConfig)
	case config.SqliteDbType:
		return connectSQLite(settings, gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

// gormLogWriter forwards gorm log lines to the project logger
type gormLogWriter struct {
	logger logger.Logger
}

func (w gormLogWriter) Printf(format string, args ...interface{}) {
	w.logger.Warn(fmt.Sprintf(format, args...))
}

// newGormLogger reports slow queries and failed statements; lookups matching no row are expected and stay silent
func newGormLogger(log logger.Logger) gormlogger.Interface {
	return gormlogger.New(gormLogWriter{logger: log}, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Migrate creates or updates the cards table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.CardModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// connectPostgres establishes PostgreSQL connection, creating the named database when missing
func connectPostgres(settings config.DatabaseSettings, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if settings.Name == "" {
		return db, nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}

	// CREATE DATABASE fails when it already exists, which is fine
	_, _ = sqlDB.Exec(fmt.Sprintf("CREATE DATABASE %s", settings.Name))

	if err := sqlDB.Close(); err != nil {
		return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
	}

	dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)
	db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
	}

	return db, nil
}

// connectMySQL establishes MySQL connection; the DSN must name the database
func connectMySQL(settings config.DatabaseSettings, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(settings.DSN), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	return db, nil
}

// connectSQLite establishes SQLite connection
func connectSQLite(settings config.DatabaseSettings, gormConfig *gorm.Config) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = config.DefaultSqliteDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	// a single connection serializes writers and keeps ":memory:" databases shared
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
