package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"remcua-backend/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Upload kinds, used as object name prefixes.
const (
	KindImage = "images"
	KindVideo = "videos"
)

// ObjectStore is the media upload boundary. Upload returns the public URL
// of the stored object.
type ObjectStore interface {
	Upload(ctx context.Context, kind, fileName string, file io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
}

// Default is the process-wide store, set by Init. Tests swap in a fake.
var Default ObjectStore

type MinIOStore struct {
	client *minio.Client
	bucket string
}

func Init() {
	client, err := minio.New(config.MINIO_ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(config.MINIO_ACCESS_KEY, config.MINIO_SECRET_KEY, ""),
		Secure: config.MINIO_USE_SSL,
	})
	if err != nil {
		log.Fatal("❌ Failed to connect to MinIO:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, config.MINIO_BUCKET)
	if err != nil {
		log.Fatal("❌ Failed to check MinIO bucket:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MINIO_BUCKET, minio.MakeBucketOptions{}); err != nil {
			log.Fatal("❌ Failed to create MinIO bucket:", err)
		}
	}

	Default = &MinIOStore{client: client, bucket: config.MINIO_BUCKET}
	fmt.Println("✅ Connected to MinIO")
}

// ObjectName builds the stored path: <kind>/<yyyy>/<mm>/<uuid><ext>.
func ObjectName(kind, fileName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%s/%d/%02d/%s%s", kind, now.Year(), now.Month(), uuid.New().String(), ext)
}

// PublicURL joins the configured media base, bucket and object path.
func PublicURL(bucket, objectName string) string {
	return strings.TrimSuffix(config.PUBLIC_MEDIA_URL, "/") + "/" + bucket + "/" + objectName
}

func (m *MinIOStore) Upload(ctx context.Context, kind, fileName string, file io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := ObjectName(kind, fileName, time.Now())

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("minio upload: %w", err)
	}

	return PublicURL(m.bucket, objectName), nil
}

func (m *MinIOStore) Remove(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("minio remove: %w", err)
	}
	return nil
}
