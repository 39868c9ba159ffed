package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	// cardListGenerationKey is incremented after every committed write
	cardListGenerationKey = "card-wallet:cards:generation"
	// cardListCacheKeyPrefix prefixes the cached listing of one generation
	cardListCacheKeyPrefix = "card-wallet:cards:all:"
)

// cacheClient is the subset of *redis.Client the card cache needs
type cacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

func cardListCacheKey(generation int64) string {
	return cardListCacheKeyPrefix + strconv.FormatInt(generation, 10)
}

type cachedCardRepository struct {
	next   cards.CardRepository
	client cacheClient
	ttl    time.Duration
	logger logger.Logger
}

// NewCachedCardRepository wraps next with a redis cache of the full card listing.
// Writes through the returned repository invalidate the cached listing.
// Cache failures are logged and never fail a request.
func NewCachedCardRepository(next cards.CardRepository, client *redis.Client, ttl time.Duration, logger logger.Logger) cards.CardRepository {
	return newCachedCardRepository(next, client, ttl, logger)
}

func newCachedCardRepository(next cards.CardRepository, client cacheClient, ttl time.Duration, logger logger.Logger) *cachedCardRepository {
	return &cachedCardRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *cachedCardRepository) Create(ctx context.Context, card *cards.Card) error {
	if err := r.next.Create(ctx, card); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// List serves the listing cached for the current generation.
// The generation is read before the database, so a listing that raced a write
// is stored under a generation no later List reads.
func (r *cachedCardRepository) List(ctx context.Context) ([]*cards.Card, error) {
	generation, err := r.generation(ctx)
	if err != nil {
		r.logger.Warn("Failed to read card listing generation from cache: ", err)
		return r.next.List(ctx)
	}
	key := cardListCacheKey(generation)

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []*cards.Card
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		r.logger.Warn("Discarding undecodable card listing in cache")
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("Failed to read card listing from cache: ", err)
	}

	list, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(list)
	if err != nil {
		r.logger.Warn("Failed to encode card listing for cache: ", err)
		return list, nil
	}
	if err := r.client.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
		r.logger.Warn("Failed to cache card listing: ", err)
	}

	return list, nil
}

func (r *cachedCardRepository) generation(ctx context.Context) (int64, error) {
	generation, err := r.client.Get(ctx, cardListGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

func (r *cachedCardRepository) GetByID(ctx context.Context, cardID string) (*cards.Card, error) {
	return r.next.GetByID(ctx, cardID)
}

func (r *cachedCardRepository) GetByImage(ctx context.Context, imageName string) (*cards.Card, error) {
	return r.next.GetByImage(ctx, imageName)
}

func (r *cachedCardRepository) DeleteByID(ctx context.Context, cardID string) error {
	if err := r.next.DeleteByID(ctx, cardID); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedCardRepository) invalidate(ctx context.Context) {
	if err := r.client.Incr(ctx, cardListGenerationKey).Err(); err != nil {
		r.logger.Warn("Failed to invalidate cached card listing: ", err)
	}
}
