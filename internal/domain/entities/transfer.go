package entities

import "encoding/json"

// TransferRequest is the input of the server-initiated payout transfer.
// Amount is the worker share and PlatformFee the platform share, in kobo.
type TransferRequest struct {
	ProjectID     string `json:"project_id"`
	WorkerID      string `json:"worker_id"`
	Amount        int64  `json:"amount"`
	PlatformFee   int64  `json:"platform_fee"`
	RecipientCode string `json:"recipient_code"`
}

type TransferResult struct {
	Success          bool            `json:"success"`
	WorkerTransfer   json.RawMessage `json:"worker_transfer,omitempty"`
	PlatformTransfer json.RawMessage `json:"platform_transfer,omitempty"`
	Reference        string          `json:"reference,omitempty"`
}
