package entities

import (
	"encoding/json"
	"time"
)

type PaymentPhase string

const (
	PaymentPhaseDeposit PaymentPhase = "deposit_40"
	PaymentPhaseBalance PaymentPhase = "balance_60"
)

func (p PaymentPhase) Valid() bool {
	return p == PaymentPhaseDeposit || p == PaymentPhaseBalance
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// ParsePaymentStatus accepts "paid" as a legacy spelling of confirmed.
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	switch raw {
	case "", string(PaymentStatusConfirmed), "paid":
		return PaymentStatusConfirmed, true
	case string(PaymentStatusPending):
		return PaymentStatusPending, true
	case string(PaymentStatusFailed):
		return PaymentStatusFailed, true
	}
	return "", false
}

// Payment is a client-to-platform transaction for one phase of a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI project_id-index
//
// ProviderPayload keeps the checkout gateway response for audit.
type Payment struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"project_id"`
	PayerID         string          `json:"payer_id"`
	Phase           PaymentPhase    `json:"phase"`
	Amount          int64           `json:"amount"`
	Status          PaymentStatus   `json:"status"`
	Reference       string          `json:"reference"`
	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
