package response

import (
	"encoding/json"
	"time"

	"plaiz_studio/internal/domain/entities"
)

// Amounts are rendered in naira. The kobo value is kept alongside so that
// clients never need to round.

type AgreementResponse struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	ProposedBy       string    `json:"proposed_by"`
	Amount           float64   `json:"amount"`
	AmountKobo       int64     `json:"amount_kobo"`
	ClientAgreed     bool      `json:"client_agreed"`
	FreelancerAgreed bool      `json:"freelancer_agreed"`
	Declined         bool      `json:"declined"`
	Final            bool      `json:"final"`
	Deliverables     string    `json:"deliverables,omitempty"`
	Timeline         string    `json:"timeline,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromAgreement(a entities.Agreement) AgreementResponse {
	return AgreementResponse{
		ID:               a.ID,
		ProjectID:        a.ProjectID,
		ProposedBy:       a.ProposedBy,
		Amount:           entities.KoboToNaira(a.Amount),
		AmountKobo:       a.Amount,
		ClientAgreed:     a.ClientAgreed,
		FreelancerAgreed: a.FreelancerAgreed,
		Declined:         a.Declined,
		Final:            a.IsFinal(),
		Deliverables:     a.Deliverables,
		Timeline:         a.Timeline,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

type PaymentResponse struct {
	ID         string    `json:"id"`
	PaymentID  string    `json:"payment_id"`
	ProjectID  string    `json:"project_id"`
	PayerID    string    `json:"payer_id"`
	Phase      string    `json:"phase"`
	Amount     float64   `json:"amount"`
	AmountKobo int64     `json:"amount_kobo"`
	Status     string    `json:"status"`
	Reference  string    `json:"reference"`
	CreatedAt  time.Time `json:"created_at"`

	MPPayload map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	out := PaymentResponse{
		ID:         p.ID,
		PaymentID:  p.ID,
		ProjectID:  p.ProjectID,
		PayerID:    p.PayerID,
		Phase:      string(p.Phase),
		Amount:     entities.KoboToNaira(p.Amount),
		AmountKobo: p.Amount,
		Status:     string(p.Status),
		Reference:  p.Reference,
		CreatedAt:  p.CreatedAt,
	}
	if len(p.ProviderPayload) > 0 {
		var decoded map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayload, &decoded); err == nil {
			out.MPPayload = decoded
		}
	}
	return out
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}

type PayoutResponse struct {
	ID                string     `json:"id"`
	ProjectID         string     `json:"project_id"`
	WorkerID          string     `json:"worker_id"`
	GrossAmount       float64    `json:"gross_amount"`
	WorkerShare       float64    `json:"worker_share"`
	PlatformShare     float64    `json:"platform_share"`
	WorkerShareKobo   int64      `json:"worker_share_kobo"`
	PlatformShareKobo int64      `json:"platform_share_kobo"`
	Status            string     `json:"status"`
	TransferReference string     `json:"transfer_reference,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	SentAt            *time.Time `json:"sent_at,omitempty"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
}

func FromPayout(p entities.Payout) PayoutResponse {
	return PayoutResponse{
		ID:                p.ID,
		ProjectID:         p.ProjectID,
		WorkerID:          p.WorkerID,
		GrossAmount:       entities.KoboToNaira(p.GrossAmount),
		WorkerShare:       entities.KoboToNaira(p.WorkerShare),
		PlatformShare:     entities.KoboToNaira(p.PlatformShare),
		WorkerShareKobo:   p.WorkerShare,
		PlatformShareKobo: p.PlatformShare,
		Status:            string(p.Status),
		TransferReference: p.TransferReference,
		CreatedAt:         p.CreatedAt,
		SentAt:            p.SentAt,
		VerifiedAt:        p.VerifiedAt,
	}
}

func FromPayouts(list []entities.Payout) []PayoutResponse {
	out := make([]PayoutResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayout(p))
	}
	return out
}

type BankAccountResponse struct {
	WorkerID      string    `json:"worker_id"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	AccountName   string    `json:"account_name"`
	HasRecipient  bool      `json:"has_recipient"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromBankAccount masks the account number.
func FromBankAccount(b entities.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		WorkerID:      b.WorkerID,
		BankName:      b.BankName,
		AccountNumber: b.MaskedAccountNumber(),
		AccountName:   b.AccountName,
		HasRecipient:  b.RecipientCode != "",
		UpdatedAt:     b.UpdatedAt,
	}
}
