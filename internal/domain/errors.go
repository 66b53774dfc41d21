package domain

import "fmt"

// PreconditionViolation is a programmer error: an invariant the caller was
// responsible for upholding did not hold (invalid allocation fractions, a
// zero or oversized block length, empty tax brackets, an
// (Employer, PostTax) contribution, and the like). It is fatal to the
// call that produced it and must never be silently swallowed.
type PreconditionViolation struct {
	Reason string
}

func (e PreconditionViolation) Error() string {
	return fmt.Sprintf("precondition violation: %s", e.Reason)
}

// WithdrawalShortfall is a soft signal returned by a withdrawal strategy
// when accounts could not fully cover a requested draw. A Run treats it
// as "assets no longer adequate" and stops the retirement loop without
// propagating it further.
type WithdrawalShortfall struct {
	Amount float64
}

func (e WithdrawalShortfall) Error() string {
	return fmt.Sprintf("withdrawal shortfall of %.2f", e.Amount)
}

// CsvParseError is raised by fixture ingestion, outside the simulation
// core.
type CsvParseError struct {
	File   string
	Line   int
	Reason string
}

func (e CsvParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}
