package upload

import (
	"context"
	"io"
)

// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/campusride/services/upload ObjectStoreGW

// ObjectStoreGW writes objects to the bucket and returns their download URL
type ObjectStoreGW interface {
	Put(ctx context.Context, name, contentType string, body io.Reader) (url string, size int64, err error)
}
