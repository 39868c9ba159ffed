//go:build unit
// +build unit

package v1

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/card-wallet/internal/domain/images"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestImageHandler_Download_Success(t *testing.T) {
	mockImageService := new(MockCardImageService)
	handler := NewImageHandler(mockImageService)

	info := &images.ImageInfo{Name: "123_card.png", Size: 5, ContentType: "image/png"}
	mockImageService.On("Download", mock.Anything, "123_card.png").
		Return(io.NopCloser(bytes.NewReader([]byte("ABCDE"))), info, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/uploads/123_card.png", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "filename", Value: "123_card.png"}}

	handler.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ABCDE", w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestImageHandler_Download_NotFound(t *testing.T) {
	mockImageService := new(MockCardImageService)
	handler := NewImageHandler(mockImageService)
	mockImageService.On("Download", mock.Anything, "missing.png").Return(nil, nil, images.ErrImageNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/uploads/missing.png", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "filename", Value: "missing.png"}}

	handler.Download(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "image not found")
}
