// Package rng provides the pseudorandom source consulted inline by the
// battle core for crit rolls, dodges and proc chances.
//
// A match owns exactly one Source. Tests inject a seeded or scripted source
// so every roll is reproducible.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source is the subset of *rand.Rand the engine needs.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// New returns a deterministic PCG-backed source for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Global is a Source backed by the math/rand/v2 top-level generator.
// Used when a caller does not inject its own source.
type Global struct{}

func (Global) IntN(n int) int   { return rand.IntN(n) }
func (Global) Float64() float64 { return rand.Float64() }

// OrGlobal returns src, or Global when src is nil.
func OrGlobal(src Source) Source {
	if src == nil {
		return Global{}
	}
	return src
}

// Chance rolls a percentage check: true with probability percent/100.
func Chance(src Source, percent float64) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return src.Float64()*100 < percent
}
