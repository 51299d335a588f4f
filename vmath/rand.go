package vmath

// Mulberry32 is a seeded 32-bit generator producing a reproducible [0,1) stream
// State is exported so a stream can be inspected and resumed
type Mulberry32 struct {
	Seed  uint32 `yaml:"seed"`
	State uint32 `yaml:"state"`
	Draws uint64 `yaml:"draws"`
}

// NewMulberry32 returns a stream positioned at the start of seed's sequence
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{Seed: seed, State: seed}
}

// Next advances the stream and returns the raw 32-bit output
func (r *Mulberry32) Next() uint32 {
	r.State += 0x6D2B79F5
	r.Draws++
	t := r.State
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Float64 returns the next value in [0,1)
func (r *Mulberry32) Float64() float64 {
	return float64(r.Next()) / 4294967296.0
}

// Range returns the next value in [min,max)
// The conversion blocks fused multiply-add so results match across architectures
func (r *Mulberry32) Range(min, max float64) float64 {
	return min + float64(r.Float64()*(max-min))
}

// IntRange returns the next integer in [min,max], both ends inclusive
func (r *Mulberry32) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(r.Float64()*float64(max-min+1))
}

// Reset rewinds the stream to its seed
func (r *Mulberry32) Reset() {
	r.State = r.Seed
	r.Draws = 0
}

// LocalSeed combines a global seed with a cell index, wrapping at 32 bits
func LocalSeed(global int32, index int) uint32 {
	return uint32(global) + uint32(index)
}
