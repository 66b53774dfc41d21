package domain

// AccountSettings describes an account's starting balance and allocation
// before it is bound to a lifespan-sized rate vector.
type AccountSettings struct {
	StartingBalance float64
	Allocation      *AssetAllocation
}

// NewAccountSettings constructs AccountSettings.
func NewAccountSettings(startingBalance float64, allocation *AssetAllocation) AccountSettings {
	return AccountSettings{StartingBalance: startingBalance, Allocation: allocation}
}

// CreateAccount binds these settings to a shared, lifespan-length rate
// vector, producing a fresh zero-balance Account.
func (s AccountSettings) CreateAccount(rates []Rate) (*Account, error) {
	return NewAccount(s.StartingBalance, s.Allocation, rates)
}

// Account tracks a per-month balance vector driven by rebalance/invest,
// deposit, and withdrawal operations under a shared allocation and rate
// vector. The balance vector is sized to the account's lifespan and
// starts entirely zero; RebalanceAndInvestNextPeriod populates one
// month at a time.
type Account struct {
	startingBalance float64
	balance         []float64
	allocation      *AssetAllocation
	rates           []Rate
}

// NewAccount constructs an Account whose balance vector spans exactly
// len(rates) months.
func NewAccount(startingBalance float64, allocation *AssetAllocation, rates []Rate) (*Account, error) {
	if allocation == nil {
		return nil, PreconditionViolation{Reason: "account requires a non-nil asset allocation"}
	}
	return &Account{
		startingBalance: startingBalance,
		balance:         make([]float64, len(rates)),
		allocation:      allocation,
		rates:           rates,
	}, nil
}

// Balance exposes the full per-month balance vector; callers must treat
// it as read-only.
func (a *Account) Balance() []float64 {
	return a.balance
}

// RebalanceAndInvestNextPeriod grows the account from its prior balance
// (or starting balance at t=0) by the blended stocks/bonds return for
// that month. Precondition: balance[t] has not yet been populated this
// period; violating it is a programmer error in the caller's month
// ordering, so it panics rather than returning an error, matching the
// original implementation's hard assertion.
func (a *Account) RebalanceAndInvestNextPeriod(t Period) {
	if t.Get() >= len(a.balance) {
		panic(PreconditionViolation{Reason: "rebalance period out of range"})
	}
	if a.balance[t.Get()] != 0.0 {
		panic(PreconditionViolation{Reason: "rebalance period already populated"})
	}

	prior := a.startingBalance
	if t.Get() > 0 {
		prior = a.balance[t.Sub(1).Get()]
	}
	rate := a.rates[t.Get()]
	stocksNew := prior * a.allocation.Stocks(t) * rate.Stocks
	bondsNew := prior * a.allocation.Bonds(t) * rate.Bonds
	a.balance[t.Get()] = stocksNew + bondsNew
}

// Deposit credits amount into the balance at t.
func (a *Account) Deposit(amount float64, t Period) {
	a.balance[t.Get()] += amount
}

// WithdrawFromPeriod debits amount from the balance at t. Precondition:
// 0 <= amount <= balance[t]; violating it panics, matching the caller
// contract of the strict withdraw path (use
// AttemptWithdrawalWithShortfall when the caller cannot guarantee this).
func (a *Account) WithdrawFromPeriod(amount float64, t Period) {
	if amount < 0 || amount > a.balance[t.Get()] {
		panic(PreconditionViolation{Reason: "withdrawal exceeds available balance"})
	}
	a.balance[t.Get()] -= amount
}

// AttemptWithdrawalWithShortfall withdraws min(amount, balance[t]) and
// returns the portion that could not be covered. Never fails.
func (a *Account) AttemptWithdrawalWithShortfall(amount float64, t Period) float64 {
	available := a.balance[t.Get()]
	draw := amount
	if available < draw {
		draw = available
	}
	shortfall := amount - draw
	a.WithdrawFromPeriod(draw, t)
	return shortfall
}
