// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package santa

import "unicode/utf16"

const mulberryIncrement = 0x6D2B79F5

// Random is a Mulberry32 generator. Not safe for concurrent use.
type Random struct {
	state uint32
}

// NewSeededRandom creates a generator whose state is HashString(seed)
func NewSeededRandom(seed string) *Random {
	return &Random{state: HashString(seed)}
}

// HashString is the djb2 variant used to turn a seed into a number.
// It walks UTF-16 code units and returns the absolute value of the int32 result.
func HashString(s string) uint32 {
	var hash uint32 = 5381
	for _, unit := range utf16.Encode([]rune(s)) {
		hash = hash*33 + uint32(unit)
	}

	signed := int32(hash)
	if signed < 0 {
		// -math.MinInt32 overflows int32 but is exactly 1<<31 as uint32
		return uint32(-int64(signed))
	}
	return uint32(signed)
}

// Uint32 advances the generator and returns the next 32-bit value
func (r *Random) Uint32() uint32 {
	r.state += mulberryIncrement
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns a value in [0, 1)
func (r *Random) Float64() float64 {
	return float64(r.Uint32()) / 4294967296.0
}

// Intn returns floor(Float64() * n). n must be > 0.
func (r *Random) Intn(n int) int {
	if n <= 0 {
		panic("santa: invalid argument to Intn")
	}
	return int(r.Float64() * float64(n))
}
