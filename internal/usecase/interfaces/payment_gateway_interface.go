package interfaces

import (
	"context"
	"encoding/json"
	"plaiz_studio/internal/domain/entities"
)

// IPaymentGateway abstracts the client checkout provider (e.g. Mercado Pago).
//
// The lifecycle service uses it to charge a deposit or balance and keeps the
// provider response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

// ITransferGateway issues the worker and platform transfers of a payout.
// It is an optional automation path; the payout handshake stays authoritative.
type ITransferGateway interface {
	Transfer(ctx context.Context, req entities.TransferRequest) (entities.TransferResult, error)
}
