package images

import (
	"context"
	"fmt"
	"io"
)

// StagedImage is an image written to the store but not yet visible under its stored name.
type StagedImage interface {
	// Name returns the stored name the image becomes visible under after Commit.
	Name() string
	// Commit publishes the image under Name.
	Commit(ctx context.Context) error
	// Discard drops the staged content. It is safe to call after a failed Commit.
	Discard(ctx context.Context) error
}

// ImageConnector is an interface for interacting with an image store
type ImageConnector interface {
	// Stage writes content for a new image named after id and originalName.
	Stage(ctx context.Context, id, originalName string, content io.Reader) (StagedImage, error)

	// Open returns the content of a stored image. It returns ErrImageNotFound when absent.
	Open(ctx context.Context, name string) (io.ReadCloser, *ImageInfo, error)

	// Delete removes a stored image. Deleting an absent image is not an error.
	Delete(ctx context.Context, name string) error

	// List returns every object in the store, including abandoned staged content.
	List(ctx context.Context) ([]*ImageInfo, error)
}

// Save stages and commits content in one step and returns the stored name.
func Save(ctx context.Context, connector ImageConnector, id, originalName string, content io.Reader) (string, error) {
	staged, err := connector.Stage(ctx, id, originalName, content)
	if err != nil {
		return "", err
	}

	if err := staged.Commit(ctx); err != nil {
		_ = staged.Discard(ctx)
		return "", fmt.Errorf("failed to commit image %s: %w", staged.Name(), err)
	}

	return staged.Name(), nil
}
