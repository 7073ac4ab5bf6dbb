// Package finance implements the daily snapshot arithmetic: loan
// amortization, asset valuation, and rolling profit statistics. All
// functions are pure apart from AdvanceLoans mutating the slice it is
// given; persistence is the caller's concern.
package finance

import "truckledger/internal/models"

// AdvanceLoans applies one daily installment to every outstanding loan
// that originated before currentDay, flooring the remaining balance at
// zero. Exactly one installment is deducted per call per loan, no matter
// how many days have passed since the previous call; the recorder invokes
// this once per tick. Returns pointers to the loans whose balance changed
// so the caller can persist them.
func AdvanceLoans(loans []models.Loan, currentDay int) []*models.Loan {
	var changed []*models.Loan
	for i := range loans {
		loan := &loans[i]
		if !loan.Outstanding() || currentDay <= loan.Day {
			continue
		}
		loan.Remaining -= loan.DailyInstallment
		if loan.Remaining < 0 {
			loan.Remaining = 0
		}
		changed = append(changed, loan)
	}
	return changed
}
