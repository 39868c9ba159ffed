//go:build unit
// +build unit

package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/domain/images"
	"github.com/MGTheTrain/card-wallet/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stagedFor(id string) *MockStagedImage {
	return &MockStagedImage{name: id + "_card.png"}
}

func TestCardUploadService_Upload(t *testing.T) {
	ctx := context.Background()
	errStorage := errors.New("storage down")

	t.Run("stages, inserts and commits", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		staged := &MockStagedImage{}
		staged.On("Commit", ctx).Return(nil).Once()

		connector.On("Stage", ctx, mock.AnythingOfType("string"), "card.png", mock.Anything).
			Run(func(args mock.Arguments) {
				staged.name = args.String(1) + "_card.png"
			}).
			Return(staged, nil).Once()
		repo.On("Create", ctx, mock.AnythingOfType("*cards.Card")).Return(nil).Once()

		service, err := NewCardUploadService(repo, connector, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		card, err := service.Upload(ctx, "Starbucks", "012345", "card.png", strings.NewReader("ABCDE"))
		require.NoError(t, err)
		assert.Equal(t, "Starbucks", card.Name)
		assert.Equal(t, "012345", card.Barcode)
		assert.Equal(t, card.ID+"_card.png", card.Image)

		repo.AssertExpectations(t)
		connector.AssertExpectations(t)
		staged.AssertExpectations(t)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)

		service, err := NewCardUploadService(repo, connector, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		_, err = service.Upload(ctx, "Starbucks", "", "card.png", strings.NewReader("ABCDE"))
		assert.ErrorIs(t, err, cards.ErrInvalidCard)

		_, err = service.Upload(ctx, "Starbucks", "012345", "", nil)
		assert.ErrorIs(t, err, cards.ErrInvalidCard)

		connector.AssertNotCalled(t, "Stage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid image name is a validation error", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		connector.On("Stage", ctx, mock.Anything, "..", mock.Anything).
			Return(nil, images.ErrInvalidImageName).Once()

		service, err := NewCardUploadService(repo, connector, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		_, err = service.Upload(ctx, "Starbucks", "012345", "..", strings.NewReader("ABCDE"))
		assert.ErrorIs(t, err, cards.ErrInvalidCard)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("insert failure discards the staged image", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		staged := stagedFor("abc")
		staged.On("Discard", ctx).Return(nil).Once()

		connector.On("Stage", ctx, mock.Anything, "card.png", mock.Anything).Return(staged, nil).Once()
		repo.On("Create", ctx, mock.Anything).Return(errStorage).Once()

		service, err := NewCardUploadService(repo, connector, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		card, err := service.Upload(ctx, "Starbucks", "012345", "card.png", strings.NewReader("ABCDE"))
		assert.Nil(t, card)
		assert.ErrorIs(t, err, errStorage)
		staged.AssertExpectations(t)
		staged.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("commit failure removes the row", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		staged := stagedFor("abc")
		staged.On("Commit", ctx).Return(errStorage).Once()
		staged.On("Discard", ctx).Return(nil).Once()

		connector.On("Stage", ctx, mock.Anything, "card.png", mock.Anything).Return(staged, nil).Once()
		repo.On("Create", ctx, mock.Anything).Return(nil).Once()
		repo.On("DeleteByID", ctx, mock.AnythingOfType("string")).Return(nil).Once()

		service, err := NewCardUploadService(repo, connector, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		_, err = service.Upload(ctx, "Starbucks", "012345", "card.png", strings.NewReader("ABCDE"))
		assert.ErrorIs(t, err, errStorage)
		repo.AssertExpectations(t)
		staged.AssertExpectations(t)
	})
}

func TestCardMetadataService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCardRepository)
	connector := new(MockImageConnector)

	card := cards.NewCard("Starbucks", "012345")
	repo.On("List", ctx).Return([]*cards.Card{card}, nil).Once()

	service, err := NewCardMetadataService(repo, connector, true, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	list, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*cards.Card{card}, list)
}

func TestCardMetadataService_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes row and image", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		card := cards.NewCard("Starbucks", "012345")
		card.Image = card.ID + "_card.png"

		repo.On("GetByID", ctx, card.ID).Return(card, nil).Once()
		repo.On("DeleteByID", ctx, card.ID).Return(nil).Once()
		connector.On("Delete", ctx, card.Image).Return(nil).Once()

		service, err := NewCardMetadataService(repo, connector, true, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		require.NoError(t, service.DeleteByID(ctx, card.ID))
		repo.AssertExpectations(t)
		connector.AssertExpectations(t)
	})

	t.Run("keeps the image when configured", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		card := cards.NewCard("Starbucks", "012345")
		card.Image = card.ID + "_card.png"

		repo.On("GetByID", ctx, card.ID).Return(card, nil).Once()
		repo.On("DeleteByID", ctx, card.ID).Return(nil).Once()

		service, err := NewCardMetadataService(repo, connector, false, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		require.NoError(t, service.DeleteByID(ctx, card.ID))
		connector.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown id succeeds", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		repo.On("GetByID", ctx, "missing").Return(nil, cards.ErrCardNotFound).Once()

		service, err := NewCardMetadataService(repo, connector, true, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		require.NoError(t, service.DeleteByID(ctx, "missing"))
		repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("image removal failure is not an error", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		card := cards.NewCard("Starbucks", "012345")
		card.Image = card.ID + "_card.png"

		repo.On("GetByID", ctx, card.ID).Return(card, nil).Once()
		repo.On("DeleteByID", ctx, card.ID).Return(nil).Once()
		connector.On("Delete", ctx, card.Image).Return(errors.New("permission denied")).Once()

		service, err := NewCardMetadataService(repo, connector, true, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		assert.NoError(t, service.DeleteByID(ctx, card.ID))
	})

	t.Run("row deletion failure is returned", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		card := cards.NewCard("Starbucks", "012345")
		errStorage := errors.New("database locked")

		repo.On("GetByID", ctx, card.ID).Return(card, nil).Once()
		repo.On("DeleteByID", ctx, card.ID).Return(errStorage).Once()

		service, err := NewCardMetadataService(repo, connector, true, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		assert.ErrorIs(t, service.DeleteByID(ctx, card.ID), errStorage)
		connector.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCardImageService_Download(t *testing.T) {
	ctx := context.Background()
	imageName := "abc_card.png"
	info := &images.ImageInfo{Name: imageName, Size: 5, ContentType: "image/png"}

	t.Run("serves referenced image", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		repo.On("GetByImage", ctx, imageName).Return(&cards.Card{Image: imageName}, nil).Once()
		connector.On("Open", ctx, imageName).Return(io.NopCloser(bytes.NewReader([]byte("ABCDE"))), info, nil).Once()

		service, err := NewCardImageService(repo, connector, false, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		rc, got, err := service.Download(ctx, imageName)
		require.NoError(t, err)
		defer rc.Close()

		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "ABCDE", string(content))
		assert.Equal(t, info, got)
	})

	t.Run("unreferenced image is not found", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		repo.On("GetByImage", ctx, imageName).Return(nil, cards.ErrCardNotFound).Once()

		service, err := NewCardImageService(repo, connector, false, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		_, _, err = service.Download(ctx, imageName)
		assert.ErrorIs(t, err, images.ErrImageNotFound)
		connector.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
	})

	t.Run("serves unreferenced image when allowed", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		connector.On("Open", ctx, imageName).Return(io.NopCloser(bytes.NewReader([]byte("ABCDE"))), info, nil).Once()

		service, err := NewCardImageService(repo, connector, true, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		rc, _, err := service.Download(ctx, imageName)
		require.NoError(t, err)
		_ = rc.Close()
		repo.AssertNotCalled(t, "GetByImage", mock.Anything, mock.Anything)
	})

	t.Run("invalid name is not found", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)

		service, err := NewCardImageService(repo, connector, true, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		_, _, err = service.Download(ctx, "..")
		assert.ErrorIs(t, err, images.ErrImageNotFound)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		repo := new(MockCardRepository)
		connector := new(MockImageConnector)
		connector.On("Open", ctx, imageName).Return(nil, nil, images.ErrImageNotFound).Once()

		service, err := NewCardImageService(repo, connector, true, testutil.SetupTestLogger(t))
		require.NoError(t, err)

		_, _, err = service.Download(ctx, imageName)
		assert.ErrorIs(t, err, images.ErrImageNotFound)
	})
}
