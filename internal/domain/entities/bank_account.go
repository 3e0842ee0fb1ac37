package entities

import "time"

// BankAccount is the transfer destination of a worker. RecipientCode is the
// transfer gateway's handle for the account.
type BankAccount struct {
	WorkerID      string    `json:"worker_id"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	AccountName   string    `json:"account_name"`
	RecipientCode string    `json:"recipient_code,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MaskedAccountNumber keeps only the last four digits.
func (b BankAccount) MaskedAccountNumber() string {
	n := b.AccountNumber
	if len(n) <= 4 {
		return n
	}
	masked := make([]byte, len(n))
	for i := range masked {
		if i < len(n)-4 {
			masked[i] = '*'
		} else {
			masked[i] = n[i]
		}
	}
	return string(masked)
}
