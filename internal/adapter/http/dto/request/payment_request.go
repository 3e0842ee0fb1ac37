package request

import (
	"encoding/json"
	"strings"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase"
)

// RecordPaymentRequest registers a payment confirmed outside the checkout
// gateway (bank transfer, provider webhook relay).
type RecordPaymentRequest struct {
	Phase     string  `json:"phase" binding:"required"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
}

func (r RecordPaymentRequest) ToInput() usecase.PaymentInput {
	return usecase.PaymentInput{
		Phase:     entities.PaymentPhase(strings.TrimSpace(r.Phase)),
		Amount:    entities.NairaToKobo(r.Amount),
		Reference: strings.TrimSpace(r.Reference),
		Status:    strings.ToLower(strings.TrimSpace(r.Status)),
	}
}

// CheckoutRequest charges a phase through Mercado Pago.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas; amount, reference and description are filled in by the service.
type CheckoutRequest struct {
	Phase     string          `json:"phase" binding:"required"`
	Amount    float64         `json:"amount"`
	MPPayload json.RawMessage `json:"mp_payload"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		Phase:           entities.PaymentPhase(strings.TrimSpace(r.Phase)),
		Amount:          entities.NairaToKobo(r.Amount),
		ProviderPayload: r.MPPayload,
	}
}
