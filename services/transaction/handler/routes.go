package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/services/transaction"
	httpHandler "github.com/piresc/campusride/services/transaction/handler/http"
)

type Handler struct {
	transactionHTTP *httpHandler.TransactionHandler
}

func NewHandler(transactionUC transaction.TransactionUC) *Handler {
	return &Handler{transactionHTTP: httpHandler.NewTransactionHandler(transactionUC)}
}

func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	txns := api.Group("/transactions", auth)
	txns.GET("", h.transactionHTTP.ListTransactions)
	txns.POST("", h.transactionHTTP.CreateTransaction)
	txns.GET("/lookup", h.transactionHTTP.GetTransaction)

	api.POST("/checkout", h.transactionHTTP.Checkout, auth)
}

// RegisterWebhooks mounts provider callbacks, which authenticate by signature
func (h *Handler) RegisterWebhooks(e *echo.Echo) {
	e.POST("/webhooks/paystack", h.transactionHTTP.PaystackWebhook)
}
