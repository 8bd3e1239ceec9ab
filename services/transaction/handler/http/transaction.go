package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	nrpkg "github.com/piresc/campusride/internal/pkg/newrelic"
	"github.com/piresc/campusride/internal/utils"
	"github.com/piresc/campusride/services/transaction"
)

const (
	paystackSignatureHeader = "x-paystack-signature"
	maxWebhookBody          = 1 << 20
)

// TransactionHandler handles HTTP requests for payments
type TransactionHandler struct {
	transactionUC transaction.TransactionUC
}

func NewTransactionHandler(transactionUC transaction.TransactionUC) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.CreateTransaction")

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	created, err := h.transactionUC.CreateTransaction(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Transaction recorded successfully", created)
}

// GetTransaction looks one transaction up by trnxId, studentId or driverId
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.GetTransaction")

	var q models.TransactionQuery
	if err := c.Bind(&q); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	found, err := h.transactionUC.GetTransaction(c.Request().Context(), middleware.SessionFrom(c), q)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", found)
}

func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.ListTransactions")

	var filter models.TransactionFilter
	if err := c.Bind(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	result, err := h.transactionUC.ListTransactions(c.Request().Context(), middleware.SessionFrom(c), filter)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TransactionHandler) Checkout(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.Checkout")

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	result, err := h.transactionUC.Checkout(c.Request().Context(), middleware.SessionFrom(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	status, msg := http.StatusCreated, "Checkout completed successfully"
	if !result.Created {
		status, msg = http.StatusOK, "Checkout already completed"
	}
	return utils.SuccessResponse(c, status, msg, result)
}

// PaystackWebhook needs the raw body for the signature check, so it never binds
func (h *TransactionHandler) PaystackWebhook(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Webhooks.Paystack")

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	signature := c.Request().Header.Get(paystackSignatureHeader)
	if err := h.transactionUC.HandlePaymentWebhook(c.Request().Context(), signature, body); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", nil)
}
