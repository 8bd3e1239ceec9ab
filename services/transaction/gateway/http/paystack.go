package gateway_http

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/campusride/internal/pkg/http"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/pkg/retry"
)

const DefaultPaystackURL = "https://api.paystack.co"

// Paystack verifies charges against the Paystack REST API
type Paystack struct {
	client    *httpclient.Client
	secretKey string
	retrier   *retry.Retrier
	breaker   *circuitbreaker.CircuitBreaker
}

func NewPaystack(cfg models.PaystackConfig) *Paystack {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultPaystackURL
	}
	client := httpclient.NewClient(baseURL, cfg.RequestTimeout)
	client.Header.Set("Authorization", "Bearer "+cfg.SecretKey)

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.MaxRetries
	retryCfg.RetryableFunc = httpclient.IsTemporary

	return &Paystack{
		client:    client,
		secretKey: cfg.SecretKey,
		retrier:   retry.New(retryCfg),
		breaker: circuitbreaker.New(circuitbreaker.Config{
			Name:      "paystack",
			IsFailure: httpclient.IsTemporary,
		}),
	}
}

type verifyResponse struct {
	Status  bool                       `json:"status"`
	Message string                     `json:"message"`
	Data    models.PaymentVerification `json:"data"`
}

// VerifyPayment looks the charge up by reference. Rejections by Paystack are
// not retried; transport failures and 5xx answers are, until the breaker opens.
func (p *Paystack) VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error) {
	if reference == "" {
		return nil, apperror.Validation("reference is required")
	}

	var resp verifyResponse
	err := p.breaker.Execute(ctx, func(ctx context.Context) error {
		return p.retrier.Execute(ctx, "paystack.verify", func(ctx context.Context) error {
			resp = verifyResponse{}
			return p.client.GetJSON(ctx, "/transaction/verify/"+url.PathEscape(reference), nil, &resp)
		})
	})
	if err != nil {
		var se *httpclient.StatusError
		if errors.As(err, &se) && se.StatusCode >= http.StatusBadRequest && se.StatusCode < http.StatusInternalServerError {
			logger.WarnCtx(ctx, "Paystack rejected verification",
				logger.String("reference", reference),
				logger.Int("status", se.StatusCode))
			return nil, apperror.Payment("payment could not be verified", err)
		}
		logger.ErrorCtx(ctx, "Paystack verification failed", logger.String("reference", reference), logger.Err(err))
		return nil, apperror.Payment("payment provider is unavailable", err)
	}
	if !resp.Status {
		return nil, apperror.Payment("payment could not be verified", errors.New(resp.Message))
	}
	if resp.Data.Reference == "" {
		resp.Data.Reference = reference
	}
	return &resp.Data, nil
}

// ValidSignature reports whether signature is the hex HMAC-SHA512 of body under the secret key
func (p *Paystack) ValidSignature(signature string, body []byte) bool {
	if signature == "" || p.secretKey == "" {
		return false
	}
	expected := Sign(p.secretKey, body)
	return hmac.Equal([]byte(strings.ToLower(signature)), []byte(expected))
}

// Sign computes the signature Paystack sends along with body
func Sign(secretKey string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
