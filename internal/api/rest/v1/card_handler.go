package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/card-wallet/internal/domain/cards"

	"github.com/gin-gonic/gin"
)

// CardHandler defines the interface for handling card-related operations
type CardHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// cardHandler struct holds the services
type cardHandler struct {
	cardUploadService   cards.CardUploadService
	cardMetadataService cards.CardMetadataService
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardUploadService cards.CardUploadService, cardMetadataService cards.CardMetadataService) CardHandler {
	return &cardHandler{
		cardUploadService:   cardUploadService,
		cardMetadataService: cardMetadataService,
	}
}

// Create stores the uploaded image and creates a card referencing it
func (handler *cardHandler) Create(ctx *gin.Context) {
	var request CreateCardRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, NewErrorResponse(fmt.Sprintf("invalid form data: %v", err)))
		return
	}

	if err := request.Validate(); err != nil {
		writeError(ctx, err)
		return
	}

	file, err := request.Image.Open()
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, NewErrorResponse(fmt.Sprintf("failed to read image: %v", err)))
		return
	}
	defer file.Close()

	card, err := handler.cardUploadService.Upload(ctx, request.Name, request.Barcode, request.Image.Filename, file)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewCardResponse(card))
}

// List returns every card
func (handler *cardHandler) List(ctx *gin.Context) {
	cardList, err := handler.cardMetadataService.List(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []CardResponse{}
	for _, card := range cardList {
		listResponse = append(listResponse, NewCardResponse(card))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// DeleteByID deletes a card; unknown ids are reported as deleted as well
func (handler *cardHandler) DeleteByID(ctx *gin.Context) {
	cardID := ctx.Param("card_id")

	if err := handler.cardMetadataService.DeleteByID(ctx, cardID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}
