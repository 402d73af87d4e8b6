package gateway

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"github.com/deliciosaph/deliciosa/internal/config"
)

// StorageGateway uploads content images to the S3-compatible object store
// and serves back their public URLs.
type StorageGateway struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

func NewStorageGateway(conf config.Storage) (*StorageGateway, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "storage client init failed")
	}

	publicBase := conf.PublicBaseURL
	if publicBase == "" {
		scheme := "http"
		if conf.UseSSL {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, conf.Endpoint, conf.Bucket)
	}

	return &StorageGateway{
		client:        client,
		bucket:        conf.Bucket,
		publicBaseURL: strings.TrimRight(publicBase, "/"),
	}, nil
}

// Upload stores the object under folder/<uuid>.<ext> and returns its
// public URL. The original filename only contributes the extension.
func (g *StorageGateway) Upload(ctx context.Context, folder, filename string, r io.Reader, size int64, contentType string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	objectName := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	_, err := g.client.PutObject(ctx, g.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "upload failed")
	}

	return g.publicBaseURL + "/" + objectName, nil
}

// Delete removes the object a public URL points at. URLs outside the
// bucket are rejected rather than silently ignored.
func (g *StorageGateway) Delete(ctx context.Context, publicURL string) error {
	objectName, err := g.objectNameFromURL(publicURL)
	if err != nil {
		return err
	}
	err = g.client.RemoveObject(ctx, g.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "delete failed")
	}
	return nil
}

func (g *StorageGateway) objectNameFromURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid object url")
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if part == g.bucket && i+1 < len(parts) {
			return strings.Join(parts[i+1:], "/"), nil
		}
	}

	// Public base may already omit the bucket segment (CDN alias).
	base, err := url.Parse(g.publicBaseURL)
	if err == nil && u.Host == base.Host {
		name := strings.TrimPrefix(u.Path, base.Path)
		name = strings.Trim(name, "/")
		if name != "" {
			return name, nil
		}
	}

	return "", fmt.Errorf("url %q is outside bucket %q", publicURL, g.bucket)
}
