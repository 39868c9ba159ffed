//go:build integration
// +build integration

package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/domain/images"
	"github.com/MGTheTrain/card-wallet/internal/infrastructure/connector"
	"github.com/MGTheTrain/card-wallet/internal/infrastructure/persistence"
	"github.com/MGTheTrain/card-wallet/internal/pkg/config"
	"github.com/MGTheTrain/card-wallet/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type servicesTestContext struct {
	Directory string
	Upload    cards.CardUploadService
	Metadata  cards.CardMetadataService
	Images    cards.CardImageService
	Sweeper   *OrphanSweeper
}

func setupServices(t *testing.T) *servicesTestContext {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dir := filepath.Join(t.TempDir(), "uploads")

	testDB := persistence.SetupTestDB(t)
	imageConnector, err := connector.NewLocalImageConnector(&config.ImageStoreSettings{
		Provider:  config.LocalImageProvider,
		Directory: dir,
	}, log)
	require.NoError(t, err)

	upload, err := NewCardUploadService(testDB.CardRepo, imageConnector, log)
	require.NoError(t, err)
	metadata, err := NewCardMetadataService(testDB.CardRepo, imageConnector, true, log)
	require.NoError(t, err)
	imageService, err := NewCardImageService(testDB.CardRepo, imageConnector, false, log)
	require.NoError(t, err)

	return &servicesTestContext{
		Directory: dir,
		Upload:    upload,
		Metadata:  metadata,
		Images:    imageService,
		Sweeper:   NewOrphanSweeper(testDB.CardRepo, imageConnector, 0, log),
	}
}

func TestCardServices_Lifecycle(t *testing.T) {
	ctx := context.Background()
	tc := setupServices(t)

	card, err := tc.Upload.Upload(ctx, "Starbucks", "012345", "card.png", strings.NewReader("ABCDE"))
	require.NoError(t, err)
	assert.Equal(t, card.ID+"_card.png", card.Image)

	list, err := tc.Metadata.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, card.ID, list[0].ID)

	rc, info, err := tc.Images.Download(ctx, card.Image)
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "ABCDE", string(content))
	assert.Equal(t, "image/png", info.ContentType)

	require.NoError(t, tc.Metadata.DeleteByID(ctx, card.ID))
	require.NoError(t, tc.Metadata.DeleteByID(ctx, card.ID))

	list, err = tc.Metadata.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = os.Stat(filepath.Join(tc.Directory, card.Image))
	assert.True(t, os.IsNotExist(err))

	_, _, err = tc.Images.Download(ctx, card.Image)
	assert.ErrorIs(t, err, images.ErrImageNotFound)
}

func TestOrphanSweeper_RemovesUnreferencedFiles(t *testing.T) {
	ctx := context.Background()
	tc := setupServices(t)

	card, err := tc.Upload.Upload(ctx, "Starbucks", "012345", "card.png", strings.NewReader("ABCDE"))
	require.NoError(t, err)

	orphan := filepath.Join(tc.Directory, "orphan.png")
	require.NoError(t, os.WriteFile(orphan, []byte("XYZ"), 0600))
	past := time.Now().Add(-time.Minute)
	require.NoError(t, os.Chtimes(orphan, past, past))

	removed, err := tc.Sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(orphan)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(tc.Directory, card.Image))
	assert.NoError(t, err)
}
