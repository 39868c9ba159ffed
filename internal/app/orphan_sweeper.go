package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/domain/images"
	"github.com/MGTheTrain/card-wallet/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// sweepTimeout bounds a single scheduled sweep
const sweepTimeout = 5 * time.Minute

// OrphanSweeper removes stored images that no card references.
// Images younger than the grace period are kept, since an upload stages its
// image before the card row exists.
type OrphanSweeper struct {
	cardRepository cards.CardRepository
	imageConnector images.ImageConnector
	gracePeriod    time.Duration
	logger         logger.Logger
	now            func() time.Time
}

// NewOrphanSweeper creates a new OrphanSweeper
func NewOrphanSweeper(cardRepository cards.CardRepository, imageConnector images.ImageConnector, gracePeriod time.Duration, logger logger.Logger) *OrphanSweeper {
	return &OrphanSweeper{
		cardRepository: cardRepository,
		imageConnector: imageConnector,
		gracePeriod:    gracePeriod,
		logger:         logger,
		now:            time.Now,
	}
}

// Sweep deletes unreferenced images older than the grace period and returns how many were removed
func (s *OrphanSweeper) Sweep(ctx context.Context) (int, error) {
	stored, err := s.imageConnector.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list stored images: %w", err)
	}

	cardList, err := s.cardRepository.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list cards: %w", err)
	}

	referenced := make(map[string]struct{}, len(cardList))
	for _, card := range cardList {
		referenced[card.Image] = struct{}{}
	}

	cutoff := s.now().Add(-s.gracePeriod)
	removed := 0
	for _, image := range stored {
		if _, ok := referenced[image.Name]; ok {
			continue
		}
		if image.LastModified.After(cutoff) {
			continue
		}
		if err := s.imageConnector.Delete(ctx, image.Name); err != nil {
			s.logger.Warn("Failed to remove orphaned image ", image.Name, ": ", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info("Removed ", removed, " orphaned images")
	}
	return removed, nil
}

// Schedule runs Sweep on a cron schedule until the returned cron is stopped
func (s *OrphanSweeper) Schedule(schedule string) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		if _, err := s.Sweep(ctx); err != nil {
			s.logger.Error("Orphaned image sweep failed: ", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule orphaned image sweep: %w", err)
	}

	c.Start()
	s.logger.Info("Scheduled orphaned image sweep ", schedule)
	return c, nil
}
