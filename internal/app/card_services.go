package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/domain/images"
	"github.com/MGTheTrain/card-wallet/internal/pkg/logger"
)

// cardUploadService implements the CardUploadService interface
type cardUploadService struct {
	cardRepository cards.CardRepository
	imageConnector images.ImageConnector
	logger         logger.Logger
}

// NewCardUploadService creates a new instance of CardUploadService
func NewCardUploadService(cardRepository cards.CardRepository, imageConnector images.ImageConnector, logger logger.Logger) (cards.CardUploadService, error) {
	return &cardUploadService{
		cardRepository: cardRepository,
		imageConnector: imageConnector,
		logger:         logger,
	}, nil
}

// Upload stages the image, inserts the card row and only then publishes the image.
// A failed insert discards the staged image; a failed publish removes the row again.
func (s *cardUploadService) Upload(ctx context.Context, name, barcode, imageName string, image io.Reader) (*cards.Card, error) {
	if name == "" || barcode == "" {
		return nil, fmt.Errorf("%w: name and barcode are required", cards.ErrInvalidCard)
	}
	if image == nil || imageName == "" {
		return nil, fmt.Errorf("%w: image is required", cards.ErrInvalidCard)
	}

	card := cards.NewCard(name, barcode)

	staged, err := s.imageConnector.Stage(ctx, card.ID, imageName, image)
	if err != nil {
		if errors.Is(err, images.ErrInvalidImageName) {
			return nil, fmt.Errorf("%w: %v", cards.ErrInvalidCard, err)
		}
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	card.Image = staged.Name()

	if err := s.cardRepository.Create(ctx, card); err != nil {
		s.discard(ctx, staged)
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	if err := staged.Commit(ctx); err != nil {
		if delErr := s.cardRepository.DeleteByID(ctx, card.ID); delErr != nil {
			s.logger.Error("Failed to remove card ", card.ID, " after image commit failure: ", delErr)
		}
		s.discard(ctx, staged)
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	s.logger.Info("Created card ", card.ID, " with image ", card.Image)
	return card, nil
}

func (s *cardUploadService) discard(ctx context.Context, staged images.StagedImage) {
	if err := staged.Discard(ctx); err != nil {
		s.logger.Warn("Failed to discard staged image ", staged.Name(), ": ", err)
	}
}

// cardMetadataService implements the CardMetadataService interface
type cardMetadataService struct {
	cardRepository cards.CardRepository
	imageConnector images.ImageConnector
	removeImages   bool
	logger         logger.Logger
}

// NewCardMetadataService creates a new instance of CardMetadataService.
// With removeImages set, deleting a card also removes its stored image.
func NewCardMetadataService(cardRepository cards.CardRepository, imageConnector images.ImageConnector, removeImages bool, logger logger.Logger) (cards.CardMetadataService, error) {
	return &cardMetadataService{
		cardRepository: cardRepository,
		imageConnector: imageConnector,
		removeImages:   removeImages,
		logger:         logger,
	}, nil
}

// List returns every card
func (s *cardMetadataService) List(ctx context.Context) ([]*cards.Card, error) {
	list, err := s.cardRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return list, nil
}

// GetByID returns a single card
func (s *cardMetadataService) GetByID(ctx context.Context, cardID string) (*cards.Card, error) {
	return s.cardRepository.GetByID(ctx, cardID)
}

// DeleteByID removes the card row and then, best effort, its image
func (s *cardMetadataService) DeleteByID(ctx context.Context, cardID string) error {
	card, err := s.cardRepository.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, cards.ErrCardNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up card %s: %w", cardID, err)
	}

	if err := s.cardRepository.DeleteByID(ctx, cardID); err != nil {
		return fmt.Errorf("failed to delete card %s: %w", cardID, err)
	}

	if s.removeImages {
		if err := s.imageConnector.Delete(ctx, card.Image); err != nil {
			s.logger.Warn("Failed to delete image ", card.Image, " of card ", cardID, ": ", err)
		}
	}

	return nil
}

// cardImageService implements the CardImageService interface
type cardImageService struct {
	cardRepository    cards.CardRepository
	imageConnector    images.ImageConnector
	serveUnreferenced bool
	logger            logger.Logger
}

// NewCardImageService creates a new instance of CardImageService.
// Unless serveUnreferenced is set, only images referenced by a card are served.
func NewCardImageService(cardRepository cards.CardRepository, imageConnector images.ImageConnector, serveUnreferenced bool, logger logger.Logger) (cards.CardImageService, error) {
	return &cardImageService{
		cardRepository:    cardRepository,
		imageConnector:    imageConnector,
		serveUnreferenced: serveUnreferenced,
		logger:            logger,
	}, nil
}

// Download opens a stored image; invalid and unreferenced names are reported as not found
func (s *cardImageService) Download(ctx context.Context, imageName string) (io.ReadCloser, *images.ImageInfo, error) {
	if err := images.ValidateName(imageName); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", images.ErrImageNotFound, err)
	}

	if !s.serveUnreferenced {
		if _, err := s.cardRepository.GetByImage(ctx, imageName); err != nil {
			if errors.Is(err, cards.ErrCardNotFound) {
				return nil, nil, fmt.Errorf("%w: %s is not referenced by a card", images.ErrImageNotFound, imageName)
			}
			return nil, nil, fmt.Errorf("failed to look up image owner: %w", err)
		}
	}

	rc, info, err := s.imageConnector.Open(ctx, imageName)
	if err != nil {
		return nil, nil, err
	}
	return rc, info, nil
}
