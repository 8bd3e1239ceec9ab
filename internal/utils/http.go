package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/apperror"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = apperror.MsgLoginRequired
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// AppErrorResponse maps a classified error to its status and caller-safe message.
// Unclassified errors become a generic 500.
func AppErrorResponse(c echo.Context, err error) error {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)
	return c.JSON(status, ErrorResponse{
		Success: false,
		Error:   apperror.Message(err),
		Code:    status,
		Kind:    string(kind),
	})
}
