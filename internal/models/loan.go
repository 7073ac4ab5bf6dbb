package models

// Loan represents a bank loan. Day is the origination day; Remaining is
// the outstanding balance, non-increasing and floored at zero. Fully paid
// loans are retained for historical display.
type Loan struct {
	Asset
	Amount           float64 `gorm:"not null" json:"amount"`
	Term             int     `gorm:"not null" json:"term"`
	InterestRate     float64 `gorm:"not null;default:0" json:"interest_rate"`
	DailyInstallment float64 `gorm:"not null" json:"daily_installment"`
	Remaining        float64 `gorm:"not null" json:"remaining"`
}

// Outstanding reports whether the loan still has a balance to amortize.
func (l *Loan) Outstanding() bool { return l.Remaining > 0 }
