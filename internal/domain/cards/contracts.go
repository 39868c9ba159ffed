package cards

import (
	"context"
	"io"

	"github.com/MGTheTrain/card-wallet/internal/domain/images"
)

// CardUploadService defines methods for creating cards together with their image.
type CardUploadService interface {
	// Upload stores the image, persists a new card referencing it and returns the card.
	Upload(ctx context.Context, name, barcode, imageName string, image io.Reader) (*Card, error)
}

// CardMetadataService defines methods for reading and deleting cards.
type CardMetadataService interface {
	// List returns every card.
	List(ctx context.Context) ([]*Card, error)

	// GetByID returns the card with the given id or ErrCardNotFound.
	GetByID(ctx context.Context, cardID string) (*Card, error)

	// DeleteByID deletes a card. Deleting an unknown id succeeds.
	DeleteByID(ctx context.Context, cardID string) error
}

// CardImageService defines methods for reading stored card images.
type CardImageService interface {
	// Download opens a stored image. It returns images.ErrImageNotFound when the image cannot be served.
	Download(ctx context.Context, imageName string) (io.ReadCloser, *images.ImageInfo, error)
}

// CardRepository defines the interface for Card persistence
type CardRepository interface {
	// Create adds a new Card to the database
	Create(ctx context.Context, card *Card) error
	// List lists all Cards in the database
	List(ctx context.Context) ([]*Card, error)
	// GetByID retrieves a Card from the database by ID
	GetByID(ctx context.Context, cardID string) (*Card, error)
	// GetByImage retrieves the Card referencing a stored image
	GetByImage(ctx context.Context, imageName string) (*Card, error)
	// DeleteByID deletes a Card in the database by ID; unknown ids are ignored
	DeleteByID(ctx context.Context, cardID string) error
}
