// Package rng provides explicitly seeded, PCG-family pseudorandom
// sources. Nothing in this module may read from math/rand's global
// default source: every run derives its own generator from the
// simulation seed so a single uint64 reproduces an entire run.
package rng

// Source is what the rate sampler and mortality sampler need from a
// generator: a uniform integer draw and a uniform float draw. Both the
// real PCG generator and the deterministic test doubles in this package
// satisfy it, mirroring how the upstream Rust source swaps in mock
// uniform generators for its own block-bootstrap tests.
type Source interface {
	// Uint64n returns a value uniformly distributed in [0, n).
	Uint64n(n uint64) uint64
	// Float64 returns a value uniformly distributed in [0, 1).
	Float64() float64
}

const (
	multiplier64 = 6364136223846793005
	increment64  = 1442695040888963407
)

// PCG is a 64-bit permuted congruential generator: a 64-bit linear
// congruential step followed by MurmurHash3's fmix64 finalizer, which
// de-correlates the low bits the raw LCG state is weak in. It does not
// aim for bit-compatibility with any particular PCG variant elsewhere in
// the ecosystem (notably Rust's rand_pcg::Pcg64Mcg); it exists to give
// every Run its own independent, deterministic, explicitly seeded stream.
type PCG struct {
	state uint64
}

// NewPCG seeds a generator from a single uint64.
func NewPCG(seed uint64) *PCG {
	p := &PCG{state: seed + increment64}
	p.step()
	return p
}

func (p *PCG) step() {
	p.state = p.state*multiplier64 + increment64
}

// Uint64 advances the generator and returns the next 64-bit output.
func (p *PCG) Uint64() uint64 {
	p.step()
	x := p.state
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// Uint64n returns a value uniformly distributed in [0, n). n must be > 0.
func (p *PCG) Uint64n(n uint64) uint64 {
	return p.Uint64() % n
}

// Float64 returns a value uniformly distributed in [0, 1), using the top
// 53 bits of the output (the usual double-precision mantissa trick).
func (p *PCG) Float64() float64 {
	return float64(p.Uint64()>>11) / float64(1<<53)
}

// Bool runs a Bernoulli(p) trial against this generator's Float64
// stream.
func Bool(src Source, p float64) bool {
	return src.Float64() < p
}
