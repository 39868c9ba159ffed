package v1

import (
	"net/http"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	cardUploadService cards.CardUploadService,
	cardMetadataService cards.CardMetadataService,
	cardImageService cards.CardImageService) {

	v1 := r.Group(BasePath)

	// Cards Routes
	cardHandler := NewCardHandler(cardUploadService, cardMetadataService)
	v1.GET("/cards", cardHandler.List)
	v1.POST("/cards", cardHandler.Create)
	v1.DELETE("/cards/:card_id", cardHandler.DeleteByID)

	// Images Routes
	imageHandler := NewImageHandler(cardImageService)
	r.GET(UploadsPath+"/:filename", imageHandler.Download)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, StatusResponse{Status: "ok"})
	})
}
