package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	nrpkg "github.com/piresc/campusride/internal/pkg/newrelic"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/upload"
)

const formField = "file"

type UploadHandler struct {
	uploadUC upload.UploadUC
}

func NewUploadHandler(uploadUC upload.UploadUC) *UploadHandler {
	return &UploadHandler{uploadUC: uploadUC}
}

// Upload stores the multipart "file" field
func (h *UploadHandler) Upload(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Uploads.Upload")

	fh, err := c.FormFile(formField)
	if err != nil {
		return utils.BadRequestResponse(c, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "file could not be read")
	}
	defer f.Close()

	result, err := h.uploadUC.Upload(c.Request().Context(), middleware.SessionFrom(c), models.UploadRequest{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "File uploaded successfully", result)
}
