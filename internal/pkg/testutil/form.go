package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// CardForm describes the multipart body of a create card request.
// Empty fields are left out of the body.
type CardForm struct {
	Name          string
	Barcode       string
	ImageFileName string
	ImageContent  []byte
}

// CreateCardForm encodes form as multipart/form-data and returns the body with its content type
func CreateCardForm(t *testing.T, form CardForm) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if form.Name != "" {
		require.NoError(t, writer.WriteField("name", form.Name))
	}
	if form.Barcode != "" {
		require.NoError(t, writer.WriteField("barcode", form.Barcode))
	}
	if form.ImageFileName != "" {
		part, err := writer.CreateFormFile("image", form.ImageFileName)
		require.NoError(t, err)
		_, err = part.Write(form.ImageContent)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}
