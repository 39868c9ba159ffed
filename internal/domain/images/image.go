package images

import (
	"errors"
	"fmt"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/MGTheTrain/card-wallet/internal/pkg/validators"
)

var (
	// ErrImageNotFound is returned when no stored image has the requested name.
	ErrImageNotFound = errors.New("image not found")
	// ErrInvalidImageName is returned for names that are not a single plain path segment.
	ErrInvalidImageName = errors.New("invalid image name")
)

// ImageInfo describes a stored image
type ImageInfo struct {
	Name         string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// StoredName derives the name an upload is stored under: "{id}_{base name of originalName}".
// Only the last path segment of the client supplied name is kept.
func StoredName(id, originalName string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrInvalidImageName)
	}

	base := path.Base(strings.ReplaceAll(originalName, `\`, "/"))
	if base == "." || base == "/" || base == ".." || strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidImageName, originalName)
	}

	name := id + "_" + base
	if !validators.IsImageName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidImageName, originalName)
	}
	return name, nil
}

// ValidateName returns ErrInvalidImageName unless name can be served from an image store.
func ValidateName(name string) error {
	if !validators.IsImageName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidImageName, name)
	}
	return nil
}

// ContentTypeFor infers the media type of a stored image from its extension.
func ContentTypeFor(name string) string {
	if contentType := mime.TypeByExtension(filepath.Ext(name)); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}
