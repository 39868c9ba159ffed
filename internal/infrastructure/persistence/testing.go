//go:build unit || integration
// +build unit integration

package persistence

import (
	"testing"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/pkg/config"
	"github.com/MGTheTrain/card-wallet/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB       *gorm.DB
	CardRepo cards.CardRepository
}

// SetupTestDB opens a migrated in-memory sqlite database that is closed on cleanup
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	db, err := NewDBConnection(config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}, log)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	cardRepo, err := NewGormCardRepository(db, log)
	require.NoError(t, err, "Failed to create card repository")

	return &TestContext{
		DB:       db,
		CardRepo: cardRepo,
	}
}

// CreateTestCard returns a valid, not yet persisted card
func CreateTestCard(t *testing.T, name string) *cards.Card {
	t.Helper()

	card := cards.NewCard(name, "012345")
	card.Image = card.ID + "_card.png"
	return card
}
