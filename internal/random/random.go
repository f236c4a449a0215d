// Package random provides the deterministic generator used for case
// generation, template selection, and event draws.
//
// The generator is a 32-bit linear congruential recurrence. Its entire state
// is one uint32, so it can be stored in a game snapshot and resumed later
// with identical output.
package random

import (
	"math"
	"time"
)

const (
	mult = 1664525
	inc  = 1013904223
)

// Source is a seeded pseudo-random sequence. The zero value is a valid
// source seeded with 0.
type Source struct {
	state uint32
}

// New returns a source seeded with seed.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Float advances the state and returns a value in [0, 1).
func (s *Source) Float() float64 {
	s.state = mult*s.state + inc
	return float64(s.state) / (1 << 32)
}

// State returns the current internal state. New(src.State()) continues the
// sequence exactly where src left off.
func (s *Source) State() uint32 {
	return s.state
}

// Int returns min + k*step for a uniformly drawn k, covering every step-aligned
// value in [min, max]. A non-positive step is treated as 1.
func Int(src *Source, min, max, step float64) float64 {
	if step <= 0 {
		step = 1
	}
	count := math.Floor((max-min)/step) + 1
	if count < 1 {
		count = 1
	}
	return min + math.Floor(src.Float()*count)*step
}

// Float interpolates uniformly into [min, max) and rounds to decimals places.
func Float(src *Source, min, max float64, decimals int) float64 {
	return Round(min+src.Float()*(max-min), decimals)
}

// Choice picks one element uniformly. It reports false for an empty list.
func Choice[T any](src *Source, list []T) (T, bool) {
	var zero T
	if len(list) == 0 {
		return zero, false
	}
	i := int(math.Floor(src.Float() * float64(len(list))))
	if i >= len(list) {
		i = len(list) - 1
	}
	return list[i], true
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// SeedFrom derives a seed from the wall clock plus the turn counters, so two
// calls in the same millisecond on different turns still get distinct seeds.
func SeedFrom(t time.Time, turnIndex, promptsCompleted int) uint32 {
	return uint32(t.UnixMilli() + int64(turnIndex) + int64(promptsCompleted))
}
