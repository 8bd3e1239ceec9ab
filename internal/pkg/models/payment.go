package models

import (
	"bytes"
	"encoding/json"
)

// PaymentMetadata is attached to a charge by the client checkout
type PaymentMetadata struct {
	Driver  string `json:"driver"`
	Trip    string `json:"trip"`
	Student string `json:"student"`
}

// UnmarshalJSON accepts any metadata shape. Only an object carries fields;
// strings and other values set by foreign checkouts decode as empty.
func (m *PaymentMetadata) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		*m = PaymentMetadata{}
		return nil
	}
	type plain PaymentMetadata
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = PaymentMetadata(p)
	return nil
}

// PaymentVerification is the gateway's view of a charge
type PaymentVerification struct {
	Reference string          `json:"reference"`
	Status    string          `json:"status"`
	Amount    int64           `json:"amount"` // minor units
	Currency  string          `json:"currency"`
	Metadata  PaymentMetadata `json:"metadata"`
}

// Succeeded reports whether the charge settled
func (p *PaymentVerification) Succeeded() bool {
	return p.Status == "success"
}

// PaymentWebhookEvent is the body of a gateway webhook delivery
type PaymentWebhookEvent struct {
	Event string              `json:"event"`
	Data  PaymentVerification `json:"data"`
}

const PaymentEventChargeSuccess = "charge.success"
