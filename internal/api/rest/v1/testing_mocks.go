//go:build unit
// +build unit

package v1

import (
	"context"
	"io"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/domain/images"

	"github.com/stretchr/testify/mock"
)

// MockCardUploadService is a mock implementation of CardUploadService
type MockCardUploadService struct {
	mock.Mock
}

func (m *MockCardUploadService) Upload(ctx context.Context, name, barcode, imageName string, image io.Reader) (*cards.Card, error) {
	args := m.Called(ctx, name, barcode, imageName, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cards.Card), args.Error(1)
}

// MockCardMetadataService is a mock implementation of CardMetadataService
type MockCardMetadataService struct {
	mock.Mock
}

func (m *MockCardMetadataService) List(ctx context.Context) ([]*cards.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cards.Card), args.Error(1)
}

func (m *MockCardMetadataService) GetByID(ctx context.Context, cardID string) (*cards.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cards.Card), args.Error(1)
}

func (m *MockCardMetadataService) DeleteByID(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

// MockCardImageService is a mock implementation of CardImageService
type MockCardImageService struct {
	mock.Mock
}

func (m *MockCardImageService) Download(ctx context.Context, imageName string) (io.ReadCloser, *images.ImageInfo, error) {
	args := m.Called(ctx, imageName)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*images.ImageInfo), args.Error(2)
}
