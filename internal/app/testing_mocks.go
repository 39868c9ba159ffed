//go:build unit
// +build unit

package app

import (
	"context"
	"io"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/domain/images"

	"github.com/stretchr/testify/mock"
)

// MockCardRepository is a mock implementation of CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *cards.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) List(ctx context.Context) ([]*cards.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cards.Card), args.Error(1)
}

func (m *MockCardRepository) GetByID(ctx context.Context, cardID string) (*cards.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cards.Card), args.Error(1)
}

func (m *MockCardRepository) GetByImage(ctx context.Context, imageName string) (*cards.Card, error) {
	args := m.Called(ctx, imageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cards.Card), args.Error(1)
}

func (m *MockCardRepository) DeleteByID(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

// MockImageConnector is a mock implementation of ImageConnector
type MockImageConnector struct {
	mock.Mock
}

func (m *MockImageConnector) Stage(ctx context.Context, id, originalName string, content io.Reader) (images.StagedImage, error) {
	args := m.Called(ctx, id, originalName, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(images.StagedImage), args.Error(1)
}

func (m *MockImageConnector) Open(ctx context.Context, name string) (io.ReadCloser, *images.ImageInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*images.ImageInfo), args.Error(2)
}

func (m *MockImageConnector) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockImageConnector) List(ctx context.Context) ([]*images.ImageInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.ImageInfo), args.Error(1)
}

// MockStagedImage is a mock implementation of StagedImage
type MockStagedImage struct {
	mock.Mock
	name string
}

func (m *MockStagedImage) Name() string {
	return m.name
}

func (m *MockStagedImage) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStagedImage) Discard(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
