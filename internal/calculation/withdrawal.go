package calculation

import (
	"github.com/rpgo/retirement-calculator/internal/domain"
)

// WithdrawalStrategy draws withdrawal dollars out of a set of accounts
// for a single period. A nil return means the full amount was covered;
// a non-nil domain.WithdrawalShortfall reports how much could not be.
type WithdrawalStrategy interface {
	Execute(withdrawal float64, accounts []*domain.Account, period domain.Period) error
}

// ProportionalWithdrawalStrategy draws from every account in
// proportion to its current balance, so no single account is drained
// before the others. If every account balance is zero the proportional
// split is undefined; this reports the full withdrawal as shortfall
// rather than dividing by zero.
type ProportionalWithdrawalStrategy struct{}

// NewProportionalWithdrawalStrategy builds a ProportionalWithdrawalStrategy.
func NewProportionalWithdrawalStrategy() *ProportionalWithdrawalStrategy {
	return &ProportionalWithdrawalStrategy{}
}

func (s *ProportionalWithdrawalStrategy) Execute(withdrawal float64, accounts []*domain.Account, period domain.Period) error {
	total := 0.0
	for _, a := range accounts {
		total += a.Balance()[period.Get()]
	}

	if total == 0.0 {
		if withdrawal == 0.0 {
			return nil
		}
		return domain.WithdrawalShortfall{Amount: withdrawal}
	}

	shortfall := 0.0
	for _, a := range accounts {
		share := (a.Balance()[period.Get()] / total) * withdrawal
		shortfall += a.AttemptWithdrawalWithShortfall(share, period)
	}

	if shortfall != 0.0 {
		return domain.WithdrawalShortfall{Amount: shortfall}
	}
	return nil
}
