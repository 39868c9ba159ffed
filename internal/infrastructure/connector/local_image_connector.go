package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/card-wallet/internal/domain/images"
	"github.com/MGTheTrain/card-wallet/internal/pkg/config"
	"github.com/MGTheTrain/card-wallet/internal/pkg/logger"
)

// stagingPrefix marks uploads that have not been committed yet; hidden names are never served
const stagingPrefix = ".staging-"

type localImageConnector struct {
	directory string
	logger    logger.Logger
}

// NewLocalImageConnector creates the image directory when missing and returns a connector storing images in it
func NewLocalImageConnector(settings *config.ImageStoreSettings, logger logger.Logger) (images.ImageConnector, error) {
	if settings.Directory == "" {
		return nil, fmt.Errorf("image directory must not be empty")
	}

	if err := os.MkdirAll(settings.Directory, 0750); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", settings.Directory, err)
	}

	logger.Info("Storing images in ", settings.Directory)
	return &localImageConnector{
		directory: settings.Directory,
		logger:    logger,
	}, nil
}

func (c *localImageConnector) Stage(ctx context.Context, id, originalName string, content io.Reader) (images.StagedImage, error) {
	name, err := images.StoredName(id, originalName)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(c.directory, stagingPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging file: %w", err)
	}

	if _, err := io.Copy(tmp, content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to write image %s: %w", name, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to close staging file: %w", err)
	}

	return &localStagedImage{
		connector: c,
		tempPath:  tmp.Name(),
		name:      name,
	}, nil
}

func (c *localImageConnector) Open(_ context.Context, name string) (io.ReadCloser, *images.ImageInfo, error) {
	if err := images.ValidateName(name); err != nil {
		return nil, nil, err
	}

	file, err := os.Open(filepath.Join(c.directory, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", images.ErrImageNotFound, name)
		}
		return nil, nil, fmt.Errorf("failed to open image %s: %w", name, err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("failed to stat image %s: %w", name, err)
	}
	if stat.IsDir() {
		_ = file.Close()
		return nil, nil, fmt.Errorf("%w: %s", images.ErrImageNotFound, name)
	}

	return file, infoFromFile(stat), nil
}

func (c *localImageConnector) Delete(_ context.Context, name string) error {
	if !isPlainFileName(name) {
		return fmt.Errorf("%w: %q", images.ErrInvalidImageName, name)
	}

	if err := os.Remove(filepath.Join(c.directory, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete image %s: %w", name, err)
	}

	c.logger.Debug("Deleted image ", name)
	return nil
}

func (c *localImageConnector) List(_ context.Context) ([]*images.ImageInfo, error) {
	entries, err := os.ReadDir(c.directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	infos := make([]*images.ImageInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stat, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		infos = append(infos, infoFromFile(stat))
	}

	return infos, nil
}

func infoFromFile(stat fs.FileInfo) *images.ImageInfo {
	return &images.ImageInfo{
		Name:         stat.Name(),
		Size:         stat.Size(),
		ContentType:  images.ContentTypeFor(stat.Name()),
		LastModified: stat.ModTime(),
	}
}

// isPlainFileName accepts any single path segment, staging files included
func isPlainFileName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

type localStagedImage struct {
	connector *localImageConnector
	tempPath  string
	name      string
}

func (s *localStagedImage) Name() string {
	return s.name
}

func (s *localStagedImage) Commit(_ context.Context) error {
	if err := os.Rename(s.tempPath, filepath.Join(s.connector.directory, s.name)); err != nil {
		return fmt.Errorf("failed to publish image %s: %w", s.name, err)
	}
	s.connector.logger.Info("Stored image ", s.name)
	return nil
}

func (s *localStagedImage) Discard(_ context.Context) error {
	if err := os.Remove(s.tempPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to discard staged image %s: %w", s.name, err)
	}
	return nil
}
