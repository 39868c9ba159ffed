package v1

import (
	"net/http"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"

	"github.com/gin-gonic/gin"
)

// ImageHandler defines the interface for serving stored card images
type ImageHandler interface {
	Download(ctx *gin.Context)
}

type imageHandler struct {
	cardImageService cards.CardImageService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(cardImageService cards.CardImageService) ImageHandler {
	return &imageHandler{
		cardImageService: cardImageService,
	}
}

// Download streams a stored image with a content type inferred from its extension
func (handler *imageHandler) Download(ctx *gin.Context) {
	imageName := ctx.Param("filename")

	content, info, err := handler.cardImageService.Download(ctx, imageName)
	if err != nil {
		writeError(ctx, err)
		return
	}
	defer content.Close()

	ctx.DataFromReader(http.StatusOK, info.Size, info.ContentType, content, nil)
}
