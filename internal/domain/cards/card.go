package cards

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/card-wallet/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// ErrCardNotFound is returned by lookups that match no card.
	ErrCardNotFound = errors.New("card not found")
	// ErrInvalidCard wraps every validation failure of a card or card request.
	ErrInvalidCard = errors.New("invalid card")
)

// Card entity
type Card struct {
	ID      string `validate:"required,uuid4"`
	Name    string `validate:"required"`
	Barcode string `validate:"required"`
	Image   string `validate:"required,imageName"`
}

// NewCard returns a card with a freshly generated id. The image is set once it has been stored.
func NewCard(name, barcode string) *Card {
	return &Card{
		ID:      uuid.NewString(),
		Name:    name,
		Barcode: barcode,
	}
}

// Validate for validating Card struct
func (c *Card) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", ErrInvalidCard, messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
