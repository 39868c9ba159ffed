package v1

import (
	"fmt"
	"mime/multipart"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"

	"github.com/go-playground/validator/v10"
)

// CreateCardRequest is the multipart body of a create card request
type CreateCardRequest struct {
	Name    string                `form:"name" binding:"required" validate:"required"`
	Barcode string                `form:"barcode" binding:"required" validate:"required"`
	Image   *multipart.FileHeader `form:"image" binding:"required" validate:"required"`
}

// Validate checks that every field of the request is present
func (r *CreateCardRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", cards.ErrInvalidCard, err)
	}
	return nil
}

// CardResponse represents a card in API responses
type CardResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Barcode string `json:"barcode"`
	Image   string `json:"image"`
}

// NewCardResponse maps a card entity to its response representation
func NewCardResponse(card *cards.Card) CardResponse {
	return CardResponse{
		ID:      card.ID,
		Name:    card.Name,
		Barcode: card.Barcode,
		Image:   card.Image,
	}
}

// StatusResponse is returned by endpoints without a resource body
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse carries an error message
type ErrorResponse struct {
	Message *string `json:"message,omitempty"`
}

// NewErrorResponse returns an ErrorResponse holding message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: &message}
}
