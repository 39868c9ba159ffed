package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Image store providers
const (
	LocalImageProvider = "local"
	MinioImageProvider = "minio"
)

// DefaultImageDirectory is the directory holding uploaded images for the local provider
const DefaultImageDirectory = "uploads"

// ImageStoreSettings configures where uploaded card images are persisted
type ImageStoreSettings struct {
	Provider  string `mapstructure:"provider" validate:"required,oneof=local minio"`
	Directory string `mapstructure:"directory"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`

	// RemoveOnDelete removes the stored image when its card is deleted. Off by default: deleted cards keep their file.
	RemoveOnDelete bool `mapstructure:"remove_on_delete"`
	// ServeUnreferenced serves any stored image, not only those referenced by a card. On by default.
	ServeUnreferenced bool `mapstructure:"serve_unreferenced"`
}

// Validate checks that the settings required by the selected provider are present
func (s *ImageStoreSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ImageStoreSettings: %w", err)
	}

	switch s.Provider {
	case LocalImageProvider:
		if s.Directory == "" {
			return fmt.Errorf("directory is required for the local image store")
		}
	case MinioImageProvider:
		if s.Endpoint == "" || s.Bucket == "" {
			return fmt.Errorf("endpoint and bucket are required for the minio image store")
		}
		if s.AccessKey == "" || s.SecretKey == "" {
			return fmt.Errorf("access key and secret key are required for the minio image store")
		}
	}

	return nil
}
