package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/middleware"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/services/transaction/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var studentSession = &models.Session{UserID: "student-1", Role: models.RoleStudent}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetSession(c, studentSession)
	return c, rec
}

func TestTransactionHandler_Checkout(t *testing.T) {
	tests := []struct {
		name       string
		created    bool
		wantStatus int
	}{
		{"first delivery", true, http.StatusCreated},
		{"replay", false, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTransactionUC(ctrl)
			handler := NewTransactionHandler(mockUC)
			mockUC.EXPECT().
				Checkout(gomock.Any(), studentSession, models.CheckoutRequest{TripID: "trip-1", Reference: "ref-1"}).
				Return(&models.CheckoutResult{
					Transaction: models.Transaction{ID: "txn-1", Amount: 500, Reference: "ref-1"},
					Created:     tt.created,
				}, nil)

			c, rec := newContext(http.MethodPost, "/checkout", `{"tripId":"trip-1","reference":"ref-1"}`)

			require.NoError(t, handler.Checkout(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"amount":500`)
		})
	}
}

func TestTransactionHandler_Checkout_PaymentRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)
	mockUC.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.Payment("payment could not be verified", nil))

	c, rec := newContext(http.MethodPost, "/checkout", `{"tripId":"trip-1","reference":"bad"}`)

	require.NoError(t, handler.Checkout(c))
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "payment could not be verified")
}

func TestTransactionHandler_GetTransaction_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)
	mockUC.EXPECT().
		GetTransaction(gomock.Any(), studentSession, models.TransactionQuery{StudentID: "student-1", DriverID: "driver-1"}).
		Return(&models.Transaction{ID: "txn-1"}, nil)

	c, rec := newContext(http.MethodGet, "/transactions/lookup?studentId=student-1&driverId=driver-1", "")

	require.NoError(t, handler.GetTransaction(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"txn-1"`)
}

func TestTransactionHandler_GetTransaction_InvalidQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)
	mockUC.EXPECT().GetTransaction(gomock.Any(), studentSession, models.TransactionQuery{}).
		Return(nil, apperror.InvalidQuery("Invalid search parameters"))

	c, rec := newContext(http.MethodGet, "/transactions/lookup", "")

	require.NoError(t, handler.GetTransaction(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid search parameters")
}

func TestTransactionHandler_ListAndCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)
	mockUC.EXPECT().
		ListTransactions(gomock.Any(), studentSession, models.TransactionFilter{DriverID: "driver-1"}).
		Return(&models.Page[models.Transaction]{Data: []models.Transaction{}}, nil)
	mockUC.EXPECT().
		CreateTransaction(gomock.Any(), studentSession, models.CreateTransactionRequest{
			DriverID: "driver-1", StudentID: "student-1", TripID: "trip-1", Amount: 500,
		}).
		Return(&models.Transaction{ID: "txn-2", Amount: 500}, nil)

	c, rec := newContext(http.MethodGet, "/transactions?driverId=driver-1", "")
	require.NoError(t, handler.ListTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)

	c, rec = newContext(http.MethodPost, "/transactions", `{"driverId":"driver-1","studentId":"student-1","tripId":"trip-1","amount":500}`)
	require.NoError(t, handler.CreateTransaction(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestTransactionHandler_PaystackWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)
	body := `{"event":"charge.success","data":{"reference":"ref-1"}}`
	mockUC.EXPECT().HandlePaymentWebhook(gomock.Any(), "abc123", []byte(body)).Return(nil)
	mockUC.EXPECT().HandlePaymentWebhook(gomock.Any(), "", []byte(body)).Return(apperror.Unauthenticated())

	c, rec := newContext(http.MethodPost, "/webhooks/paystack", body)
	c.Request().Header.Set("X-Paystack-Signature", "abc123")
	require.NoError(t, handler.PaystackWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodPost, "/webhooks/paystack", body)
	require.NoError(t, handler.PaystackWebhook(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
