package interfaces

import "context"

// LedgerResult mirrors the {success: bool} reply of the payout procedures.
type LedgerResult struct {
	Success bool
}

// IPayoutLedger performs the authoritative payout handshake transitions
// (mark_payout_as_sent / confirm_payout_receipt).

type IPayoutLedger interface {
	MarkAsSent(ctx context.Context, payoutID string) (LedgerResult, error)
	ConfirmReceipt(ctx context.Context, payoutID string) (LedgerResult, error)
}
