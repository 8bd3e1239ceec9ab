package upload

import (
	"context"

	"github.com/piresc/campusride/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/campusride/services/upload UploadUC

type UploadUC interface {
	Upload(ctx context.Context, s *models.Session, req models.UploadRequest) (*models.UploadResult, error)
}
