package mathx

// seedFallback replaces a zero seed, which would lock xorshift at zero forever.
const seedFallback uint32 = 0x9E3779B9

// XorShift32 is a tiny deterministic PRNG (13/17/5 xorshift). It is the
// only randomness source in the simulation; keeping one instance per
// consumer makes runs reproducible from a single seed.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 returns a generator seeded with the given value.
func NewXorShift32(seed uint32) XorShift32 {
	if seed == 0 {
		seed = seedFallback
	}
	return XorShift32{state: seed}
}

// Next advances the generator and returns the next 32-bit value.
func (r *XorShift32) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniform value in [0, 1).
func (r *XorShift32) Float64() float64 {
	return float64(r.Next()) / (1 << 32)
}
