package entities

import "time"

type PayoutStatus string

const (
	PayoutStatusAwaitingPayment PayoutStatus = "awaiting_payment"
	PayoutStatusPaymentSent     PayoutStatus = "payment_sent"
	PayoutStatusPaymentVerified PayoutStatus = "payment_verified"
)

// Payout is the worker-facing settlement record of a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI project_id-index, worker_id-index
type Payout struct {
	ID                string       `json:"id"`
	ProjectID         string       `json:"project_id"`
	WorkerID          string       `json:"worker_id"`
	GrossAmount       int64        `json:"gross_amount"`
	WorkerShare       int64        `json:"worker_share"`
	PlatformShare     int64        `json:"platform_share"`
	Status            PayoutStatus `json:"status"`
	TransferReference string       `json:"transfer_reference,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	SentAt            *time.Time   `json:"sent_at,omitempty"`
	VerifiedAt        *time.Time   `json:"verified_at,omitempty"`
}
