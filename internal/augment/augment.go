// Package augment generates synthetic training variants of an image:
// color jitter, additive Gaussian noise and directional brightness gradients.
package augment

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrComputation is returned when an operator receives parameters or an
// image it cannot work with.
var ErrComputation = errors.New("augment: invalid computation")

// Rand is the source of randomness used for noise and parameter draws.
// *rand.Rand satisfies it; tests can supply deterministic sequences.
type Rand interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
	// NormFloat64 returns a standard normal sample.
	NormFloat64() float64
}

// NewRand returns a PCG-backed source. Distinct streams with the same seed
// produce independent sequences.
func NewRand(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

func computationErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrComputation, op, err)
}
