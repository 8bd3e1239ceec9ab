package gateway

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/piresc/campusride/services/upload"
)

const downloadHost = "https://firebasestorage.googleapis.com"

// ObjectStoreGW stores uploads in a Firebase Storage bucket
type ObjectStoreGW struct {
	bucket     *storage.BucketHandle
	bucketName string
	host       string
}

// NewObjectStoreGW wraps the bucket returned by the Firebase storage client
func NewObjectStoreGW(bucket *storage.BucketHandle, bucketName string) upload.ObjectStoreGW {
	return &ObjectStoreGW{bucket: bucket, bucketName: bucketName, host: downloadHost}
}

// Put streams body into the object and tags it with a download token, the way
// Firebase clients do, so the returned URL works without signing
func (g *ObjectStoreGW) Put(ctx context.Context, name, contentType string, body io.Reader) (string, int64, error) {
	token := uuid.NewString()

	w := g.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{"firebaseStorageDownloadTokens": token}

	size, err := io.Copy(w, body)
	if err != nil {
		_ = w.Close()
		return "", 0, fmt.Errorf("failed to write object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to finalize object %s: %w", name, err)
	}
	return DownloadURL(g.host, g.bucketName, name, token), size, nil
}

// DownloadURL builds the token URL Firebase serves objects under
func DownloadURL(host, bucket, name, token string) string {
	return fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media&token=%s",
		host, bucket, url.PathEscape(name), url.QueryEscape(token))
}
