package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RNG is the engine's source of randomness: uniform reals in [0, 1)
// for cumulative-weight inversion and standard normal variates for the
// gaussian model.
//
// It is injected rather than taken from a process global so tests can
// substitute a scripted source. One RNG is reused across every select
// call within an invocation without reseeding; *rand.Rand from
// math/rand/v2 satisfies the interface directly.
type RNG interface {
	Float64() float64
	NormFloat64() float64
}

// NewRNG returns a PCG-backed RNG seeded from the OS entropy source.
func NewRNG() RNG {
	var seed [16]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}
