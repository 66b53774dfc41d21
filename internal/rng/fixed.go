package rng

// FixedIntSequence is a deterministic Source stand-in for tests of the
// block-bootstrap rate sampler, mirroring the upstream Rust tests' own
// cyclic mock uniform generator: it ignores n on every call and replays
// a fixed list of values, wrapping around once exhausted.
type FixedIntSequence struct {
	values []uint64
	next   int
}

// NewFixedIntSequence builds a FixedIntSequence that cycles through
// values forever.
func NewFixedIntSequence(values ...uint64) *FixedIntSequence {
	return &FixedIntSequence{values: values}
}

// Uint64n ignores n and returns the next value in the cycle.
func (f *FixedIntSequence) Uint64n(uint64) uint64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

// Float64 is not exercised by the block-bootstrap tests that use this
// double; it is present only to satisfy Source.
func (f *FixedIntSequence) Float64() float64 {
	return 0
}

// FixedFloatSequence is a deterministic Source stand-in for tests of the
// mortality sampler's Bernoulli loop: it replays a fixed list of [0,1)
// draws, wrapping around once exhausted.
type FixedFloatSequence struct {
	values []float64
	next   int
}

// NewFixedFloatSequence builds a FixedFloatSequence that cycles through
// values forever.
func NewFixedFloatSequence(values ...float64) *FixedFloatSequence {
	return &FixedFloatSequence{values: values}
}

// Float64 returns the next value in the cycle.
func (f *FixedFloatSequence) Float64() float64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

// Uint64n is not exercised by the mortality tests that use this double;
// it is present only to satisfy Source.
func (f *FixedFloatSequence) Uint64n(n uint64) uint64 {
	return 0
}
