package calculation

import (
	"testing"

	"github.com/rpgo/retirement-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func makeDummyAccount(t *testing.T, startingBalance float64) *domain.Account {
	allocation, err := domain.NewAssetAllocation([]float64{1.0})
	assert.NoError(t, err)
	account, err := domain.NewAccount(startingBalance, allocation, []domain.Rate{domain.NewRate(1.0, 1.0, 1.0)})
	assert.NoError(t, err)
	account.RebalanceAndInvestNextPeriod(domain.NewPeriod(0))
	return account
}

func TestProportionalWithdrawalExecuteSuccess(t *testing.T) {
	account1 := makeDummyAccount(t, 1536.0)
	account2 := makeDummyAccount(t, 512.0)

	strategy := NewProportionalWithdrawalStrategy()
	err := strategy.Execute(512.0, []*domain.Account{account1, account2}, domain.NewPeriod(0))
	assert.NoError(t, err)
}

func TestProportionalWithdrawalExecuteFailure(t *testing.T) {
	account1 := makeDummyAccount(t, 1536.0)
	account2 := makeDummyAccount(t, 512.0)

	strategy := NewProportionalWithdrawalStrategy()
	err := strategy.Execute(4096.0, []*domain.Account{account1, account2}, domain.NewPeriod(0))
	assert.Error(t, err)
	shortfall, ok := err.(domain.WithdrawalShortfall)
	assert.True(t, ok)
	assert.InDelta(t, 2048.0, shortfall.Amount, 1e-9)
}

func TestProportionalWithdrawalZeroTotalReportsFullShortfall(t *testing.T) {
	account1 := makeDummyAccount(t, 0.0)
	account2 := makeDummyAccount(t, 0.0)

	strategy := NewProportionalWithdrawalStrategy()
	err := strategy.Execute(100.0, []*domain.Account{account1, account2}, domain.NewPeriod(0))
	assert.Error(t, err)
	shortfall, ok := err.(domain.WithdrawalShortfall)
	assert.True(t, ok)
	assert.InDelta(t, 100.0, shortfall.Amount, 1e-9)
}

func TestProportionalWithdrawalZeroTotalZeroWithdrawalSucceeds(t *testing.T) {
	account1 := makeDummyAccount(t, 0.0)

	strategy := NewProportionalWithdrawalStrategy()
	err := strategy.Execute(0.0, []*domain.Account{account1}, domain.NewPeriod(0))
	assert.NoError(t, err)
}
