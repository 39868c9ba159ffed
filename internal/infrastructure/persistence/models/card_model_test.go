//go:build unit
// +build unit

package models

import (
	"testing"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"

	"github.com/stretchr/testify/assert"
)

func TestCardModel_RoundTrip(t *testing.T) {
	card := &cards.Card{
		ID:      "5d3c1f0e-8a4b-4c3e-9f57-0c1a2b3d4e5f",
		Name:    "Starbucks",
		Barcode: "012345",
		Image:   "5d3c1f0e-8a4b-4c3e-9f57-0c1a2b3d4e5f_card.png",
	}

	model := &CardModel{}
	model.FromDomain(card)

	assert.Equal(t, card.ID, model.ID)
	assert.Equal(t, card.Image, model.Image)
	assert.Equal(t, card, model.ToDomain())
}

func TestCardModel_TableName(t *testing.T) {
	assert.Equal(t, "cards", CardModel{}.TableName())
}
