package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
	"github.com/MGTheTrain/card-wallet/internal/domain/images"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, cards.ErrInvalidCard), errors.Is(err, images.ErrInvalidImageName):
		return http.StatusUnprocessableEntity
	case errors.Is(err, images.ErrImageNotFound), errors.Is(err, cards.ErrCardNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), NewErrorResponse(err.Error()))
}
