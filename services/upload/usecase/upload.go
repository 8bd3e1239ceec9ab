package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/piresc/campusride/internal/pkg/access"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/upload"
)

type uploadUC struct {
	cfg     *models.Config
	storeGW upload.ObjectStoreGW
	now     func() time.Time
}

func NewUploadUC(cfg *models.Config, storeGW upload.ObjectStoreGW) (upload.UploadUC, error) {
	return &uploadUC{cfg: cfg, storeGW: storeGW, now: time.Now}, nil
}

// ObjectName names an upload "<filename>-<unix millis>.<content subtype>"
func ObjectName(filename, contentType string, at time.Time) string {
	ext := contentType
	if i := strings.Index(ext, "/"); i >= 0 {
		ext = ext[i+1:]
	}
	if i := strings.IndexAny(ext, ";+"); i >= 0 {
		ext = ext[:i]
	}
	return fmt.Sprintf("%s-%d.%s", filename, at.UnixMilli(), strings.TrimSpace(ext))
}

func (uc *uploadUC) Upload(ctx context.Context, s *models.Session, req models.UploadRequest) (*models.UploadResult, error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}

	filename := path.Base(strings.ReplaceAll(strings.TrimSpace(req.Filename), "\\", "/"))
	if filename == "" || filename == "." || filename == "/" {
		return nil, apperror.Validation("file name is required")
	}
	if !strings.Contains(req.ContentType, "/") {
		return nil, apperror.Validation("file type is required")
	}
	if limit := uc.cfg.Server.MaxUploadBytes; limit > 0 && req.Size > limit {
		return nil, apperror.Validation(fmt.Sprintf("file must be at most %d bytes", limit))
	}

	name := ObjectName(filename, req.ContentType, uc.now())
	url, size, err := uc.storeGW.Put(ctx, name, req.ContentType, req.Body)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to store upload", logger.String("name", name), logger.Err(err))
		return nil, apperror.Persistence("store file", err)
	}

	logger.InfoCtx(ctx, "File uploaded",
		logger.String("name", name),
		logger.Int64("size", size),
		logger.String("user_id", s.UserID))
	return &models.UploadResult{Name: name, URL: url, ContentType: req.ContentType, Size: size}, nil
}
