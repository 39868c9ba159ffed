package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ImageNameTag is the struct tag registered for ImageNameValidation
const ImageNameTag = "imageName"

// IsImageName reports whether name is a plain stored image name: a single path
// segment that is neither hidden nor a relative directory reference.
func IsImageName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return !strings.HasPrefix(name, ".")
}

// ImageNameValidation validates that a string field holds a plain stored image name.
func ImageNameValidation(fl validator.FieldLevel) bool {
	return IsImageName(fl.Field().String())
}

// New returns a validator with the card wallet custom validations registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(ImageNameTag, ImageNameValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
