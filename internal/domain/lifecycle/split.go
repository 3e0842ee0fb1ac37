package lifecycle

import "plaiz_studio/internal/domain/entities"

// Fixed contractual fractions, in tenths.
const (
	depositTenths     = 4
	workerShareTenths = 6
)

const koboPerNaira = 100

// roundNairaTenths returns round(naira * tenths / 10) in whole naira,
// expressed in kobo, for a non-negative amount given in kobo. Halves round up.
func roundNairaTenths(amount int64, tenths int64) int64 {
	const scale = 10 * koboPerNaira
	return (amount*tenths + scale/2) / scale * koboPerNaira
}

// SplitDeposit splits an agreed total in kobo into the 40% deposit, rounded
// to whole naira, and the 60% balance. The balance absorbs the remainder.
func SplitDeposit(amount int64) (deposit, balance int64) {
	deposit = roundNairaTenths(amount, depositTenths)
	return deposit, amount - deposit
}

// SplitPayout splits an agreed total in kobo into the worker's 60% share,
// rounded to whole naira, and the platform's 40% share. The platform share
// absorbs the remainder.
func SplitPayout(amount int64) (workerShare, platformShare int64) {
	workerShare = roundNairaTenths(amount, workerShareTenths)
	return workerShare, amount - workerShare
}

// PhaseAmount is the amount the client owes for phase under agreement a.
func PhaseAmount(a entities.Agreement, phase entities.PaymentPhase) int64 {
	deposit, balance := SplitDeposit(a.Amount)
	if phase == entities.PaymentPhaseDeposit {
		return deposit
	}
	return balance
}
