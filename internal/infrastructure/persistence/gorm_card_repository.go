package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/card-wallet/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCardRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCardRepository creates a new GORM-based CardRepository implementation
func NewGormCardRepository(db *gorm.DB, logger logger.Logger) (cards.CardRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormCardRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCardRepository) Create(ctx context.Context, card *cards.Card) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CardModel{}
	model.FromDomain(card)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}

	r.logger.Info("Created card with id ", card.ID)
	return nil
}

func (r *gormCardRepository) List(ctx context.Context) ([]*cards.Card, error) {
	var modelList []*models.CardModel
	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "sqlite" {
		query = query.Order("rowid")
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cards: %w", err)
	}

	domainList := make([]*cards.Card, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCardRepository) GetByID(ctx context.Context, cardID string) (*cards.Card, error) {
	return r.first(ctx, "id = ?", cardID)
}

func (r *gormCardRepository) GetByImage(ctx context.Context, imageName string) (*cards.Card, error) {
	return r.first(ctx, "image = ?", imageName)
}

func (r *gormCardRepository) first(ctx context.Context, query string, arg string) (*cards.Card, error) {
	var model models.CardModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", cards.ErrCardNotFound, arg)
		}
		return nil, fmt.Errorf("failed to fetch card: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCardRepository) DeleteByID(ctx context.Context, cardID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", cardID).Delete(&models.CardModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete card: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Deleted card with id ", cardID)
	}
	return nil
}
