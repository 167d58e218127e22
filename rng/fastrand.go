// Package rng provides the reseedable pseudo-random source owned by the game
package rng

// FastRand is a xorshift64 generator (13, 17, 5)
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator seeded with seed
func NewFastRand(seed uint64) *FastRand {
	r := &FastRand{}
	r.SeedFrom(seed)
	return r
}

// SeedFrom restarts the stream from seed. The seed is scrambled with one
// splitmix64 step so small seeds such as tick counts start well mixed.
// Zero is a fixed point of xorshift, so a zero state maps to 1
func (r *FastRand) SeedFrom(seed uint64) {
	state := splitmix64(seed)
	if state == 0 {
		state = 1
	}
	r.state = state
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// Next returns the next 64-bit value
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// NextU32 returns the high half of the next value; the high bits of xorshift are the better mixed
func (r *FastRand) NextU32() uint32 {
	return uint32(r.Next() >> 32)
}

// Intn returns NextU32() % n, or 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU32() % uint32(n))
}
