package core

// Initial xorshift128 state words; the seed replaces w.
const (
	xorshiftX = 123456789
	xorshiftY = 362436069
	xorshiftZ = 521288629
)

// Random is a 4-word xorshift128 generator.
// The same seed always yields the same sequence, which keeps terrain
// decoration identical between frames and runs. Not for security use.
type Random struct {
	x, y, z, w uint32
}

// NewRandom creates a generator seeded with seed.
func NewRandom(seed int64) *Random {
	r := &Random{}
	r.Seed(seed)
	return r
}

// Seed resets the generator state.
func (r *Random) Seed(seed int64) {
	r.x = xorshiftX
	r.y = xorshiftY
	r.z = xorshiftZ
	r.w = uint32(seed)
}

// Next advances the state and returns a signed 32-bit value.
func (r *Random) Next() int32 {
	t := r.x ^ (r.x << 11)
	r.x = r.y
	r.y = r.z
	r.z = r.w
	r.w = (r.w ^ (r.w >> 19)) ^ (t ^ (t >> 8))
	return int32(r.w)
}

// NextInt returns a value in [min, max] inclusive.
// If max < min the bounds are swapped.
func (r *Random) NextInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	n := int64(r.Next())
	if n < 0 {
		n = -n
	}
	return min + int(n%int64(max+1-min))
}
