package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/campusride/services/upload"
	httpHandler "github.com/piresc/campusride/services/upload/handler/http"
)

type Handler struct {
	uploadHTTP *httpHandler.UploadHandler
	maxBytes   int64
}

func NewHandler(uploadUC upload.UploadUC, maxBytes int64) *Handler {
	return &Handler{uploadHTTP: httpHandler.NewUploadHandler(uploadUC), maxBytes: maxBytes}
}

// RegisterRoutes caps the request body a little above the file limit to leave room for multipart framing
func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	mws := []echo.MiddlewareFunc{auth}
	if h.maxBytes > 0 {
		mws = append(mws, echomw.BodyLimit(fmt.Sprintf("%dK", h.maxBytes/1024+64)))
	}
	api.POST("/uploads", h.uploadHTTP.Upload, mws...)
}
