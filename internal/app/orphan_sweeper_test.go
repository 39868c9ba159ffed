//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/domain/images"
	"github.com/MGTheTrain/card-wallet/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrphanSweeper_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	old := now.Add(-2 * time.Hour)

	repo := new(MockCardRepository)
	connector := new(MockImageConnector)

	repo.On("List", ctx).Return([]*cards.Card{{ID: "a", Image: "a_kept.png"}}, nil).Once()
	connector.On("List", ctx).Return([]*images.ImageInfo{
		{Name: "a_kept.png", LastModified: old},
		{Name: "b_orphan.png", LastModified: old},
		{Name: "c_fresh.png", LastModified: now.Add(-time.Minute)},
		{Name: ".staging-123", LastModified: old},
	}, nil).Once()
	connector.On("Delete", ctx, "b_orphan.png").Return(nil).Once()
	connector.On("Delete", ctx, ".staging-123").Return(nil).Once()

	sweeper := NewOrphanSweeper(repo, connector, time.Hour, testutil.SetupTestLogger(t))
	sweeper.now = func() time.Time { return now }

	removed, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	connector.AssertExpectations(t)
	connector.AssertNotCalled(t, "Delete", ctx, "a_kept.png")
	connector.AssertNotCalled(t, "Delete", ctx, "c_fresh.png")
}

func TestOrphanSweeper_Sweep_DeleteFailureIsSkipped(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCardRepository)
	connector := new(MockImageConnector)

	repo.On("List", ctx).Return([]*cards.Card{}, nil).Once()
	connector.On("List", ctx).Return([]*images.ImageInfo{
		{Name: "a.png"},
		{Name: "b.png"},
	}, nil).Once()
	connector.On("Delete", ctx, "a.png").Return(errors.New("busy")).Once()
	connector.On("Delete", ctx, "b.png").Return(nil).Once()

	sweeper := NewOrphanSweeper(repo, connector, 0, testutil.SetupTestLogger(t))

	removed, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestOrphanSweeper_Sweep_ListFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCardRepository)
	connector := new(MockImageConnector)
	connector.On("List", ctx).Return(nil, errors.New("unreachable")).Once()

	sweeper := NewOrphanSweeper(repo, connector, time.Hour, testutil.SetupTestLogger(t))

	_, err := sweeper.Sweep(ctx)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestOrphanSweeper_Schedule(t *testing.T) {
	sweeper := NewOrphanSweeper(new(MockCardRepository), new(MockImageConnector), time.Hour, testutil.SetupTestLogger(t))

	c, err := sweeper.Schedule("@every 1h")
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()

	_, err = sweeper.Schedule("not a schedule")
	assert.Error(t, err)
}
