package connector

import (
	"context"
	"fmt"
	"io"

	"github.com/MGTheTrain/card-wallet/internal/domain/images"
	"github.com/MGTheTrain/card-wallet/internal/pkg/config"
	"github.com/MGTheTrain/card-wallet/internal/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const minioNoSuchKey = "NoSuchKey"

type minioImageConnector struct {
	client *minio.Client
	bucket string
	logger logger.Logger
}

// NewMinioImageConnector connects to an S3 compatible store and creates the image bucket when missing
func NewMinioImageConnector(ctx context.Context, settings *config.ImageStoreSettings, logger logger.Logger) (images.ImageConnector, error) {
	client, err := minio.New(settings.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(settings.AccessKey, settings.SecretKey, ""),
		Secure: settings.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, settings.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", settings.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, settings.Bucket, minio.MakeBucketOptions{}); err != nil {
			// another instance may have created it meanwhile
			if exists, errExists := client.BucketExists(ctx, settings.Bucket); errExists != nil || !exists {
				return nil, fmt.Errorf("failed to create bucket %s: %w", settings.Bucket, err)
			}
		}
		logger.Info("Created image bucket ", settings.Bucket)
	}

	return &minioImageConnector{
		client: client,
		bucket: settings.Bucket,
		logger: logger,
	}, nil
}

// Stage uploads the object under its final key. Object uploads are atomic, so the
// staged image only needs removing when the card is not persisted.
func (c *minioImageConnector) Stage(ctx context.Context, id, originalName string, content io.Reader) (images.StagedImage, error) {
	name, err := images.StoredName(id, originalName)
	if err != nil {
		return nil, err
	}

	_, err = c.client.PutObject(ctx, c.bucket, name, content, -1, minio.PutObjectOptions{
		ContentType: images.ContentTypeFor(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image %s: %w", name, err)
	}

	return &minioStagedImage{connector: c, name: name}, nil
}

func (c *minioImageConnector) Open(ctx context.Context, name string) (io.ReadCloser, *images.ImageInfo, error) {
	if err := images.ValidateName(name); err != nil {
		return nil, nil, err
	}

	object, err := c.client.GetObject(ctx, c.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, c.translateError(name, err)
	}

	stat, err := object.Stat()
	if err != nil {
		_ = object.Close()
		return nil, nil, c.translateError(name, err)
	}

	return object, infoFromObject(stat), nil
}

func (c *minioImageConnector) Delete(ctx context.Context, name string) error {
	if !isPlainFileName(name) {
		return fmt.Errorf("%w: %q", images.ErrInvalidImageName, name)
	}

	// RemoveObject succeeds for missing keys
	if err := c.client.RemoveObject(ctx, c.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", name, err)
	}

	c.logger.Debug("Deleted image ", name)
	return nil
}

func (c *minioImageConnector) List(ctx context.Context) ([]*images.ImageInfo, error) {
	var infos []*images.ImageInfo
	for object := range c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list images: %w", object.Err)
		}
		infos = append(infos, infoFromObject(object))
	}
	return infos, nil
}

func (c *minioImageConnector) translateError(name string, err error) error {
	if minio.ToErrorResponse(err).Code == minioNoSuchKey {
		return fmt.Errorf("%w: %s", images.ErrImageNotFound, name)
	}
	return fmt.Errorf("failed to read image %s: %w", name, err)
}

func infoFromObject(object minio.ObjectInfo) *images.ImageInfo {
	contentType := object.ContentType
	if contentType == "" {
		contentType = images.ContentTypeFor(object.Key)
	}
	return &images.ImageInfo{
		Name:         object.Key,
		Size:         object.Size,
		ContentType:  contentType,
		LastModified: object.LastModified,
	}
}

type minioStagedImage struct {
	connector *minioImageConnector
	name      string
}

func (s *minioStagedImage) Name() string {
	return s.name
}

func (s *minioStagedImage) Commit(_ context.Context) error {
	s.connector.logger.Info("Stored image ", s.name)
	return nil
}

func (s *minioStagedImage) Discard(ctx context.Context) error {
	return s.connector.Delete(ctx, s.name)
}
